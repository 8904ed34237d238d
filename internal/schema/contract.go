// Package schema declares the shape of structured generation output.
// A Contract is purely declarative; the transport client translates it
// into whatever representation the backend expects.
package schema

// Kind enumerates the node kinds a Contract tree may contain.
type Kind int

const (
	KindObject Kind = iota
	KindArray
	KindString
)

// Contract describes one node of the requested output shape.
type Contract struct {
	Kind        Kind
	Description string

	// Properties is set for object nodes. Order is preserved so that
	// prompts and converted schemas render deterministically.
	Properties []Property

	// Items is set for array nodes.
	Items *Contract
}

// Property is a named field of an object Contract.
type Property struct {
	Name     string
	Schema   *Contract
	Required bool
}

// Object builds an object Contract from its properties.
func Object(props ...Property) *Contract {
	return &Contract{Kind: KindObject, Properties: props}
}

// Array builds an array Contract over the given item shape.
func Array(items *Contract) *Contract {
	return &Contract{Kind: KindArray, Items: items}
}

// String builds a string Contract with an optional description.
func String(description string) *Contract {
	return &Contract{Kind: KindString, Description: description}
}

// Field declares a required object property.
func Field(name string, s *Contract) Property {
	return Property{Name: name, Schema: s, Required: true}
}

// OptionalField declares an optional object property.
func OptionalField(name string, s *Contract) Property {
	return Property{Name: name, Schema: s}
}
