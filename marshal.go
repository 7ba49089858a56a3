package w128

import (
	"fmt"
)

func (u W128) MarshalText() ([]byte, error) {
	return u.AppendDecimal(nil, false), nil
}

func (u *W128) UnmarshalText(bts []byte) (err error) {
	v, _, err := FromString(string(bts))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

func (u W128) MarshalJSON() ([]byte, error) {
	out := make([]byte, 0, maxDecimalDigits+2)
	out = append(out, '"')
	out = u.AppendDecimal(out, false)
	return append(out, '"'), nil
}

func (u *W128) UnmarshalJSON(bts []byte) (err error) {
	if len(bts) == 0 {
		return fmt.Errorf("w128: invalid JSON %q", string(bts))
	}
	if bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return fmt.Errorf("w128: invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}

	v, _, err := FromString(string(bts))
	if err != nil {
		return err
	}
	*u = v
	return nil
}
