package primitives

import "fmt"

// CharSet efficiently represents a set of characters.
type CharSet struct {
	available []bool
	min       rune
	count     int
}

func NewCharSet(min, max rune) *CharSet {
	return &CharSet{
		available: make([]bool, max-min+1),
		min:       min,
		count:     0,
	}
}

// LetterSet is the character set a puzzle grid is made of: the upper-case
// ASCII letters A to Z.
func LetterSet() *CharSet {
	return NewCharSet('A', 'Z')
}

// Add adds a character to the set.
func (c *CharSet) Add(r rune) error {
	if !c.inRange(r) {
		return fmt.Errorf("character %q is out of range", r)
	}

	if c.available[r-c.min] {
		return nil
	}

	c.count++
	c.available[r-c.min] = true
	return nil
}

// Contains checks if a character is in the set. Characters outside the
// set's range are never contained.
func (c *CharSet) Contains(r rune) bool {
	return c.inRange(r) && c.available[r-c.min]
}

// ContainsAll reports whether every character of s is in the set.
func (c *CharSet) ContainsAll(s string) bool {
	for _, r := range s {
		if !c.Contains(r) {
			return false
		}
	}
	return true
}

// Count returns the number of characters in the set.
func (c *CharSet) Count() int {
	return c.count
}

// String lists the characters in the set in order.
func (c *CharSet) String() string {
	chars := make([]rune, 0, c.count)
	for i, ok := range c.available {
		if ok {
			chars = append(chars, c.min+rune(i))
		}
	}
	return string(chars)
}

func (c *CharSet) inRange(r rune) bool {
	return r >= c.min && r < c.min+rune(len(c.available))
}
