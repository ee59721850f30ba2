// Package nav names the screens of the tracker UI.
package nav

import (
	"fmt"
	"strings"
)

// Module is one top-level screen. The set is closed.
type Module int

const (
	Dashboard Module = iota
	Products
	Inventory
	Sales
	Customers
	Reporting
)

var names = [...]string{"dashboard", "products", "inventory", "sales", "customers", "reporting"}

var titles = [...]string{"Dashboard", "Products", "Inventory", "Sales", "Customers", "Reporting"}

// Modules lists every screen in navigation order.
func Modules() []Module {
	return []Module{Dashboard, Products, Inventory, Sales, Customers, Reporting}
}

// ParseModule resolves a case-insensitive screen name.
func ParseModule(s string) (Module, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range names {
		if name == s {
			return Module(i), nil
		}
	}
	return 0, fmt.Errorf("nav: unknown module %q", s)
}

// Valid reports whether m is one of the defined screens.
func (m Module) Valid() bool {
	return m >= Dashboard && m <= Reporting
}

func (m Module) String() string {
	if !m.Valid() {
		return fmt.Sprintf("Module(%d)", int(m))
	}
	return names[m]
}

// Title is the label shown in the navigation bar.
func (m Module) Title() string {
	if !m.Valid() {
		return m.String()
	}
	return titles[m]
}

func (m Module) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("nav: invalid module %d", int(m))
	}
	return []byte(names[m]), nil
}

func (m *Module) UnmarshalText(text []byte) error {
	parsed, err := ParseModule(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
