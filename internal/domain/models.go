package domain

// Sex is the two-valued category used only to pick a display style
type Sex string

const (
	SexFemale Sex = "f"
	SexMale   Sex = "m"
)

// Person is a read-only record from the people dataset
type Person struct {
	Name       string `json:"name" toml:"name" yaml:"name"`
	Slug       string `json:"slug" toml:"slug" yaml:"slug"`
	Sex        Sex    `json:"sex" toml:"sex" yaml:"sex"`
	Born       int    `json:"born,omitempty" toml:"born,omitempty" yaml:"born,omitempty"`
	Died       int    `json:"died,omitempty" toml:"died,omitempty" yaml:"died,omitempty"`
	FatherName string `json:"fatherName,omitempty" toml:"father_name,omitempty" yaml:"fatherName,omitempty"`
	MotherName string `json:"motherName,omitempty" toml:"mother_name,omitempty" yaml:"motherName,omitempty"`
}

// IsFemale reports whether the person should use the female display style
func (p Person) IsFemale() bool {
	return p.Sex == SexFemale
}
