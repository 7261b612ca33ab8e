package addressbook

import (
	"fmt"
	"slices"

	"wedding-planner/internal/models"
)

// UniquePersonList holds persons in insertion order. No two persons share a
// name (models.Person.IsSamePerson).
type UniquePersonList struct {
	persons []models.Person
}

func NewUniquePersonList() *UniquePersonList {
	return &UniquePersonList{}
}

// Contains reports whether a person with the same identity exists.
func (l *UniquePersonList) Contains(p models.Person) bool {
	return slices.ContainsFunc(l.persons, p.IsSamePerson)
}

// Add appends p, failing with ErrDuplicatePerson if its name is taken.
func (l *UniquePersonList) Add(p models.Person) error {
	if l.Contains(p) {
		return fmt.Errorf("%w: %s", ErrDuplicatePerson, p.Name)
	}
	l.persons = append(l.persons, p)
	return nil
}

// SetPerson replaces target (matched by full equality) with edited, keeping
// its position.
func (l *UniquePersonList) SetPerson(target, edited models.Person) error {
	i := slices.IndexFunc(l.persons, target.Equal)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrPersonNotFound, target.Name)
	}
	if !target.IsSamePerson(edited) && l.Contains(edited) {
		return fmt.Errorf("%w: %s", ErrDuplicatePerson, edited.Name)
	}
	l.persons[i] = edited
	return nil
}

// Remove deletes the person equal to p.
func (l *UniquePersonList) Remove(p models.Person) error {
	i := slices.IndexFunc(l.persons, p.Equal)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrPersonNotFound, p.Name)
	}
	l.persons = slices.Delete(l.persons, i, i+1)
	return nil
}

// SetPersons replaces the whole list. It fails without changes if persons
// holds duplicates.
func (l *UniquePersonList) SetPersons(persons []models.Person) error {
	for i, p := range persons {
		if slices.ContainsFunc(persons[:i], p.IsSamePerson) {
			return fmt.Errorf("%w: %s", ErrDuplicatePerson, p.Name)
		}
	}
	l.persons = slices.Clone(persons)
	return nil
}

func (l *UniquePersonList) FindByName(name string) (models.Person, bool) {
	for _, p := range l.persons {
		if p.Name == name {
			return p, true
		}
	}
	return models.Person{}, false
}

func (l *UniquePersonList) FindByPhone(phone string) (models.Person, bool) {
	for _, p := range l.persons {
		if p.Phone == phone {
			return p, true
		}
	}
	return models.Person{}, false
}

// Persons returns a copy of the list.
func (l *UniquePersonList) Persons() []models.Person {
	return slices.Clone(l.persons)
}

func (l *UniquePersonList) Len() int { return len(l.persons) }
