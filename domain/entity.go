package domain

import (
	"reflect"

	"github.com/authcorp/sharedkernel/errors"
	"github.com/authcorp/sharedkernel/guard"
)

// Entity is a domain object whose equality is defined by its identifier.
// An identifier of zero marks the entity as transient.
type Entity interface {
	ID() int64
}

// Identity holds an entity identifier. Embed it to make a type an Entity.
type Identity struct {
	id int64
}

// NewIdentity returns an Identity with the given identifier.
func NewIdentity(id int64) (Identity, error) {
	if err := guard.NotNegative(id, "id"); err != nil {
		return Identity{}, err
	}
	return Identity{id: id}, nil
}

// ID returns the identifier, zero while transient.
func (i Identity) ID() int64 {
	return i.id
}

// IsTransient reports whether no identifier has been assigned yet.
func (i Identity) IsTransient() bool {
	return i.id == 0
}

// AssignID makes a transient entity persistent. It fails when an identifier
// is already set or id is not positive.
func (i *Identity) AssignID(id int64) error {
	if err := guard.NotInvalidOperation(!i.IsTransient(), "identifier already assigned"); err != nil {
		return err
	}
	if id <= 0 {
		return errors.OutOfRange(errors.KeyIsLessThanMinimum, "id", int(id), 1, int(^uint(0)>>1))
	}
	i.id = id
	return nil
}

// IsTransient reports whether e has no identifier. A nil entity is transient.
func IsTransient(e Entity) bool {
	return guard.IsNil(e) || e.ID() == 0
}

// EntityEquals implements entity identity:
// the same reference is equal; nil, a different concrete type or a
// transient identifier on either side is not; otherwise identifiers decide.
func EntityEquals(a, b Entity) bool {
	if guard.IsNil(a) || guard.IsNil(b) {
		return false
	}
	if sameReference(a, b) {
		return true
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	if a.ID() == 0 || b.ID() == 0 {
		return false
	}
	return a.ID() == b.ID()
}

// SameEntity is the == operator for entities: two nils are equal, exactly one
// nil is not, anything else defers to EntityEquals.
func SameEntity(a, b Entity) bool {
	aNil, bNil := guard.IsNil(a), guard.IsNil(b)
	if aNil || bNil {
		return aNil && bNil
	}
	return EntityEquals(a, b)
}

// DifferentEntity is the != operator for entities.
func DifferentEntity(a, b Entity) bool {
	return !SameEntity(a, b)
}

// EntityHash combines the runtime type name and identifier. Entities that are
// EntityEquals hash equal.
func EntityHash(e Entity) uint64 {
	if guard.IsNil(e) {
		return 0
	}
	return HashOf(reflect.TypeOf(e).String(), e.ID())
}

func sameReference(a, b Entity) bool {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Kind() != reflect.Pointer || vb.Kind() != reflect.Pointer {
		return false
	}
	return va.Type() == vb.Type() && va.Pointer() == vb.Pointer()
}
