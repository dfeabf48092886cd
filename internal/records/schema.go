package records

// jsonGroup is the on-disk shape of a function group file.
type jsonGroup struct {
	Group       *string          `yaml:"group"`
	Description string           `yaml:"description"`
	Deprecated  bool             `yaml:"deprecated"`
	Entries     *[]*jsonFunction `yaml:"entries"`
}

type jsonFunction struct {
	Name       *string      `yaml:"name"`
	ReturnType *string      `yaml:"return_type"`
	Params     []*jsonParam `yaml:"params"`
	Comment    *jsonComment `yaml:"comment"`
	Deprecated bool         `yaml:"deprecated"`
}

type jsonParam struct {
	Type *string `yaml:"type"`
	Name *string `yaml:"name"`
}

type jsonComment struct {
	Description   *string           `yaml:"description"`
	ParamComments map[string]string `yaml:"param_comments"`
	ReturnValue   string            `yaml:"return_value"`
}

// jsonVersion is the on-disk shape of an API version manifest.
type jsonVersion struct {
	Version *string   `yaml:"version"`
	Entries *[]string `yaml:"entries"`
}

// jsonExclusion is the on-disk shape of the exclusion list.
type jsonExclusion struct {
	ExclusionList *[]*jsonExclusionGroup `yaml:"exclusion_list"`
}

type jsonExclusionGroup struct {
	Group   string    `yaml:"group"`
	Entries *[]string `yaml:"entries"`
}
