package config

import (
	_ "embed"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/uzochukwuV/massacombat/internal/entities"
	"github.com/uzochukwuV/massacombat/internal/errors"
)

//go:embed catalog.yaml
var embeddedCatalog []byte

// ClassDef is one class entry in the catalog file
type ClassDef struct {
	Name           string   `yaml:"name"`
	HP             uint32   `yaml:"hp"`
	DamageMin      uint32   `yaml:"damage_min"`
	DamageMax      uint32   `yaml:"damage_max"`
	CritChance     uint8    `yaml:"crit_chance"`
	DodgeChance    uint8    `yaml:"dodge_chance"`
	Defense        uint32   `yaml:"defense"`
	StartingSkills []string `yaml:"starting_skills"`
}

// ItemDef is one equipment entry in the catalog file
type ItemDef struct {
	ID             string `yaml:"id"`
	Name           string `yaml:"name"`
	Slot           string `yaml:"slot"`
	HPBonus        uint32 `yaml:"hp_bonus"`
	DamageMinBonus uint32 `yaml:"damage_min_bonus"`
	DamageMaxBonus uint32 `yaml:"damage_max_bonus"`
	CritBonus      uint8  `yaml:"crit_bonus"`
	DodgeBonus     uint8  `yaml:"dodge_bonus"`
}

// CatalogFile mirrors the YAML document
type CatalogFile struct {
	Classes   []ClassDef `yaml:"classes"`
	Equipment []ItemDef  `yaml:"equipment"`
}

// Catalog is the parsed and checked catalog
type Catalog struct {
	Classes   map[entities.Class]entities.ClassTemplate
	Equipment []*entities.Equipment
}

// LoadCatalog parses the catalog at path, or the embedded one when path is empty
func LoadCatalog(path string) (*Catalog, error) {
	data := embeddedCatalog
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read catalog %s", path)
		}
		data = b
	}
	return ParseCatalog(data)
}

// ParseCatalog converts a YAML catalog document into class templates and items
func ParseCatalog(data []byte) (*Catalog, error) {
	var f CatalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse catalog")
	}

	cat := &Catalog{Classes: make(map[entities.Class]entities.ClassTemplate, len(f.Classes))}
	for _, def := range f.Classes {
		tmpl, err := def.template()
		if err != nil {
			return nil, err
		}
		if _, dup := cat.Classes[tmpl.Class]; dup {
			return nil, errors.InvalidArgumentf("class %s listed twice", def.Name)
		}
		cat.Classes[tmpl.Class] = tmpl
	}
	if len(cat.Classes) == 0 {
		return nil, errors.InvalidArgument("catalog defines no classes")
	}

	seen := make(map[string]bool, len(f.Equipment))
	for _, def := range f.Equipment {
		item, err := def.item()
		if err != nil {
			return nil, err
		}
		if seen[item.ID] {
			return nil, errors.InvalidArgumentf("equipment %s listed twice", item.ID)
		}
		seen[item.ID] = true
		cat.Equipment = append(cat.Equipment, item)
	}

	return cat, nil
}

func (d ClassDef) template() (entities.ClassTemplate, error) {
	class, ok := entities.ParseClass(d.Name)
	if !ok {
		return entities.ClassTemplate{}, errors.InvalidArgumentReason(errors.ReasonUnknownClass,
			"unknown class "+d.Name)
	}

	vb := errors.NewValidationBuilder()
	if d.HP == 0 {
		vb.RequiredField(d.Name + ".hp")
	}
	if d.DamageMax < d.DamageMin {
		vb.Field(d.Name+".damage_max", "must not be below damage_min")
	}
	if d.CritChance > 100 {
		vb.Field(d.Name+".crit_chance", "must be at most 100")
	}
	if d.DodgeChance > 100 {
		vb.Field(d.Name+".dodge_chance", "must be at most 100")
	}
	skills := make([]entities.SkillID, 0, len(d.StartingSkills))
	for _, name := range d.StartingSkills {
		id, ok := entities.ParseSkill(name)
		if !ok {
			vb.Fieldf(d.Name+".starting_skills", "unknown skill %q", name)
			continue
		}
		skills = append(skills, id)
	}
	if err := vb.Build(); err != nil {
		return entities.ClassTemplate{}, err
	}

	return entities.ClassTemplate{
		Class:          class,
		HP:             d.HP,
		DamageMin:      d.DamageMin,
		DamageMax:      d.DamageMax,
		CritChance:     d.CritChance,
		DodgeChance:    d.DodgeChance,
		Defense:        d.Defense,
		StartingSkills: skills,
	}, nil
}

func (d ItemDef) item() (*entities.Equipment, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("equipment.id", d.ID, vb)
	errors.ValidateRequired("equipment.name", d.Name, vb)
	slot, ok := parseSlot(d.Slot)
	if !ok {
		vb.Fieldf("equipment.slot", "unknown slot %q for %s", d.Slot, d.ID)
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	return &entities.Equipment{
		ID:             d.ID,
		Name:           d.Name,
		Slot:           slot,
		HPBonus:        d.HPBonus,
		DamageMinBonus: d.DamageMinBonus,
		DamageMaxBonus: d.DamageMaxBonus,
		CritBonus:      d.CritBonus,
		DodgeBonus:     d.DodgeBonus,
	}, nil
}

func parseSlot(name string) (entities.EquipmentSlot, bool) {
	for _, s := range []entities.EquipmentSlot{entities.SlotWeapon, entities.SlotArmor, entities.SlotAccessory} {
		if s.String() == name {
			return s, true
		}
	}
	return 0, false
}
