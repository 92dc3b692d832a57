package model

import "fmt"

// Leader is a politician holding a government office.
type Leader struct {
	FirstName    string
	LastName     string
	Title        string
	Age          int
	Experience   int // years in politics
	Charisma     int // 1-10
	Intelligence int // 1-10
	Integrity    int // 1-10
}

// FullName returns "First Last".
func (l Leader) FullName() string {
	return fmt.Sprintf("%s %s", l.FirstName, l.LastName)
}
