package config

import "github.com/specialistvlad/capigen/internal/model"

// Sources is everything read from the input files, in declaration order.
type Sources struct {
	Groups     []*GroupRecord
	Versions   []*VersionRecord
	Exclusions []*ExclusionRecord
}

// Merge appends other's records after s's.
func (s *Sources) Merge(other *Sources) {
	if other == nil {
		return
	}
	s.Groups = append(s.Groups, other.Groups...)
	s.Versions = append(s.Versions, other.Versions...)
	s.Exclusions = append(s.Exclusions, other.Exclusions...)
}

// GroupRecord is a function group as declared in one input file.
type GroupRecord struct {
	Name        string
	Description string
	Deprecated  bool
	Entries     []*FunctionRecord
	Source      model.Source
}

// FunctionRecord is a single function declaration.
type FunctionRecord struct {
	Name       string
	ReturnType string
	Params     []ParamRecord
	Comment    *CommentRecord
	Deprecated bool
	Source     model.Source
}

// ParamRecord is one parameter of a function.
type ParamRecord struct {
	Type string
	Name string
}

// CommentRecord is a function's documentation block.
type CommentRecord struct {
	Description   string
	ParamComments map[string]string
	ReturnValue   string
}

// VersionRecord is one API version manifest.
type VersionRecord struct {
	// Version is the raw, unparsed version string.
	Version string
	Entries []string
	Source  model.Source
}

// ExclusionRecord is one exclusion manifest.
type ExclusionRecord struct {
	Groups []ExclusionGroupRecord
	Source model.Source
}

// ExclusionGroupRecord lists excluded functions under a descriptive group.
type ExclusionGroupRecord struct {
	Group   string
	Entries []string
}
