package hcl

import "github.com/hashicorp/hcl/v2"

// fileRoot decodes every top-level block a definition file may contain.
type fileRoot struct {
	Groups     []*hclGroup         `hcl:"group,block"`
	Versions   []*hclVersion       `hcl:"api_version,block"`
	Exclusions []*hclExclusionList `hcl:"exclusion_list,block"`
}

type hclGroup struct {
	Name        string         `hcl:"name,label"`
	Description *string        `hcl:"description,optional"`
	Deprecated  bool           `hcl:"deprecated,optional"`
	Functions   []*hclFunction `hcl:"function,block"`
	DefRange    hcl.Range      `hcl:",def_range"`
}

type hclFunction struct {
	Name       string      `hcl:"name,label"`
	ReturnType string      `hcl:"return_type"`
	Deprecated bool        `hcl:"deprecated,optional"`
	Params     []*hclParam `hcl:"param,block"`
	Comment    *hclComment `hcl:"comment,block"`
	DefRange   hcl.Range   `hcl:",def_range"`
}

type hclParam struct {
	Name     string    `hcl:"name,label"`
	Type     string    `hcl:"type"`
	DefRange hcl.Range `hcl:",def_range"`
}

type hclComment struct {
	Description string  `hcl:"description"`
	ReturnValue *string `hcl:"return_value,optional"`

	// ParamComments is kept as an expression so its shape can be checked
	// with a precise diagnostic.
	ParamComments hcl.Expression `hcl:"param_comments,optional"`
}

type hclVersion struct {
	Version  string    `hcl:"version,label"`
	Entries  []string  `hcl:"entries"`
	DefRange hcl.Range `hcl:",def_range"`
}

type hclExclusionList struct {
	Groups   []*hclExclusionGroup `hcl:"group,block"`
	DefRange hcl.Range            `hcl:",def_range"`
}

type hclExclusionGroup struct {
	Name    string   `hcl:"name,label"`
	Entries []string `hcl:"entries"`
}
