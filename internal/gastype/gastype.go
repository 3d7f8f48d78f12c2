package gastype

import (
	"fmt"
	"strings"
)

// Type is one of the fixed gas categories a cylinder can hold.
type Type struct {
	Name   string
	Prefix string
}

// Order is the canonical display order. Counts and type listings
// always follow this order, and the prefix table below is the only
// source of truth for deriving cylinder numbers from a type name.
var Order = []Type{
	{Name: "Oxygen", Prefix: "OXY"},
	{Name: "M Oxygen", Prefix: "MOXY"},
	{Name: "Argon", Prefix: "ARG"},
	{Name: "Callgas", Prefix: "CALL"},
	{Name: "Acetylene", Prefix: "ACET"},
	{Name: "Zerogas", Prefix: "ZERO"},
	{Name: "Carbon Dioxide", Prefix: "CO2"},
	{Name: "Ethylene", Prefix: "ETH"},
	{Name: "Helium", Prefix: "HE"},
	{Name: "Hydraulic", Prefix: "HYD"},
	{Name: "Mixture", Prefix: "MIX"},
	{Name: "Other Gas 1", Prefix: "OG1"},
	{Name: "Other Gas 2", Prefix: "OG2"},
	{Name: "Other Gas 3", Prefix: "OG3"},
	{Name: "Other Gas 4", Prefix: "OG4"},
	{Name: "Other Gas 5", Prefix: "OG5"},
}

var byName = func() map[string]Type {
	m := make(map[string]Type, len(Order))
	for _, t := range Order {
		m[t.Name] = t
	}
	return m
}()

// Lookup returns the type for an exact gas name.
func Lookup(name string) (Type, bool) {
	t, ok := byName[strings.TrimSpace(name)]
	return t, ok
}

// Names returns the gas names in canonical order.
func Names() []string {
	names := make([]string, 0, len(Order))
	for _, t := range Order {
		names = append(names, t.Name)
	}
	return names
}

// Identifier builds the canonical cylinder number for a sequence
// within this type's namespace, e.g. Oxygen sequence 1 -> OXY0001.
func (t Type) Identifier(sequence int) string {
	return fmt.Sprintf("%s%04d", t.Prefix, sequence)
}
