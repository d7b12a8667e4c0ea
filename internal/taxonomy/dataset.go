package taxonomy

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

// SupportedMajor is the dataset major version this build understands.
const SupportedMajor = "v1"

//go:embed data/taxonomy.yaml
var embeddedDataset []byte

var (
	validate = validator.New()

	defaultOnce sync.Once
	defaultTax  *Taxonomy
)

// Default returns the taxonomy built from the embedded dataset. It is
// built once on first use; an invalid embedded dataset panics since no
// query can be answered without it.
func Default() *Taxonomy {
	defaultOnce.Do(func() {
		t, err := Parse(embeddedDataset)
		if err != nil {
			panic(fmt.Sprintf("taxonomy: embedded dataset: %v", err))
		}
		defaultTax = t
	})
	return defaultTax
}

// Load reads and builds a taxonomy from a YAML file.
func Load(path string) (*Taxonomy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("taxonomy: read %s: %w", path, err)
	}
	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("taxonomy: %s: %w", path, err)
	}
	return t, nil
}

// Parse decodes a YAML dataset, validates it and builds its indices.
func Parse(data []byte) (*Taxonomy, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, &ValidationError{Problems: []string{"dataset is empty"}}
	}

	var file datasetFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}

	if err := validate.Struct(&file); err != nil {
		return nil, recordErrors(err)
	}
	if !semver.IsValid(file.Version) {
		return nil, &ValidationError{Problems: []string{fmt.Sprintf("version %q is not a semantic version", file.Version)}}
	}
	if major := semver.Major(file.Version); major != SupportedMajor {
		return nil, &ValidationError{Problems: []string{fmt.Sprintf("dataset version %s unsupported, want %s.x.y", file.Version, SupportedMajor)}}
	}

	src := file.source()
	if err := validateSource(src); err != nil {
		return nil, err
	}
	return build(src), nil
}

// source is the flattened, decoded form of a dataset.
type source struct {
	version   string
	domains   []Domain
	subAreas  []SubArea
	skills    []Skill
	relations map[[2]string]Relation
	overrides []Override
}

type datasetFile struct {
	Version   string           `yaml:"version" validate:"required"`
	Domains   []domainRecord   `yaml:"domains" validate:"required,min=1,dive"`
	Relations []relationRecord `yaml:"relations" validate:"dive"`
	Overrides []overrideRecord `yaml:"overrides" validate:"dive"`
}

type domainRecord struct {
	ID           string          `yaml:"id" validate:"required"`
	Name         string          `yaml:"name" validate:"required"`
	Foundational bool            `yaml:"foundational"`
	SubAreas     []subAreaRecord `yaml:"subAreas" validate:"required,min=1,dive"`
}

type subAreaRecord struct {
	ID        string           `yaml:"id" validate:"required"`
	Name      string           `yaml:"name" validate:"required"`
	Pattern   string           `yaml:"pattern"`
	Prereqs   []string         `yaml:"prereqs" validate:"dive,required"`
	SubGroups []subGroupRecord `yaml:"subGroups" validate:"required,min=1,dive"`
}

type subGroupRecord struct {
	ID     string        `yaml:"id" validate:"required"`
	Name   string        `yaml:"name" validate:"required"`
	Skills []skillRecord `yaml:"skills" validate:"required,min=1,dive"`
}

type skillRecord struct {
	ID      string   `yaml:"id" validate:"required"`
	Name    string   `yaml:"name" validate:"required"`
	Tier    int      `yaml:"tier" validate:"min=1,max=5"`
	Prereqs []string `yaml:"prereqs" validate:"dive,required"`
}

type relationRecord struct {
	Dependent    string `yaml:"dependent" validate:"required"`
	Prerequisite string `yaml:"prerequisite" validate:"required"`
	Kind         string `yaml:"kind" validate:"required,oneof=requires supports"`
}

type overrideRecord struct {
	Dependent    string  `yaml:"dependent" validate:"required"`
	Prerequisite string  `yaml:"prerequisite" validate:"required"`
	Strength     float64 `yaml:"strength" validate:"gte=0.25,lte=0.95"`
}

func (f *datasetFile) source() source {
	src := source{
		version:   f.Version,
		relations: make(map[[2]string]Relation, len(f.Relations)),
	}
	for _, d := range f.Domains {
		dom := Domain{ID: d.ID, Name: d.Name, Foundational: d.Foundational}
		for i, sa := range d.SubAreas {
			dom.SubAreas = append(dom.SubAreas, sa.ID)
			area := SubArea{
				ID:            sa.ID,
				Name:          sa.Name,
				DomainID:      d.ID,
				Index:         i + 1,
				Pattern:       Pattern(sa.Pattern),
				Prerequisites: sa.Prereqs,
			}
			for _, sg := range sa.SubGroups {
				area.SubGroups = append(area.SubGroups, SubGroup{ID: sg.ID, Name: sg.Name})
				for _, s := range sg.Skills {
					src.skills = append(src.skills, Skill{
						ID:            s.ID,
						Name:          s.Name,
						Tier:          s.Tier,
						DomainID:      d.ID,
						SubAreaID:     sa.ID,
						SubGroupID:    sg.ID,
						Prerequisites: s.Prereqs,
					})
				}
			}
			src.subAreas = append(src.subAreas, area)
		}
		src.domains = append(src.domains, dom)
	}
	for _, r := range f.Relations {
		src.relations[[2]string{r.Dependent, r.Prerequisite}] = Relation(r.Kind)
	}
	for _, o := range f.Overrides {
		src.overrides = append(src.overrides, Override{
			Dependent:    o.Dependent,
			Prerequisite: o.Prerequisite,
			Strength:     o.Strength,
		})
	}
	return src
}

// recordErrors flattens validator failures into a ValidationError.
func recordErrors(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	problems := make([]string, 0, len(verrs))
	for _, e := range verrs {
		field := strings.TrimPrefix(e.Namespace(), "datasetFile.")
		switch e.Tag() {
		case "required":
			problems = append(problems, fmt.Sprintf("%s: field is required", field))
		case "min", "gte":
			problems = append(problems, fmt.Sprintf("%s: must be at least %s, got %v", field, e.Param(), e.Value()))
		case "max", "lte":
			problems = append(problems, fmt.Sprintf("%s: must not exceed %s, got %v", field, e.Param(), e.Value()))
		case "oneof":
			problems = append(problems, fmt.Sprintf("%s: must be one of [%s], got %v", field, e.Param(), e.Value()))
		default:
			problems = append(problems, fmt.Sprintf("%s: validation failed (%s)", field, e.Tag()))
		}
	}
	return &ValidationError{Problems: problems}
}
