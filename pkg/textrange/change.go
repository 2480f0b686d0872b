package textrange

import "fmt"

// Change describes an edit: OldLength characters at Start were replaced by
// NewLength characters.
type Change struct {
	Start     int
	OldLength int
	NewLength int
}

// Validate checks that no field is negative.
func (c Change) Validate() error {
	if c.Start < 0 || c.OldLength < 0 || c.NewLength < 0 {
		return fmt.Errorf("%w: %s", ErrInvalidChange, c)
	}
	return nil
}

// OldEnd is the end of the replaced text before the edit.
func (c Change) OldEnd() int { return c.Start + c.OldLength }

// NewEnd is the end of the inserted text after the edit.
func (c Change) NewEnd() int { return c.Start + c.NewLength }

// Offset is the distance text after the edit moves by.
func (c Change) Offset() int { return c.NewLength - c.OldLength }

// IsNoop reports whether the change neither removes nor inserts text.
func (c Change) IsNoop() bool { return c.OldLength == 0 && c.NewLength == 0 }

func (c Change) String() string {
	return fmt.Sprintf("change at %d: -%d +%d", c.Start, c.OldLength, c.NewLength)
}
