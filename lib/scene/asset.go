package scene

import (
	"sort"
	"strings"

	"github.com/hashicorp/go-set/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/pescuma/casket/lib/consoles"
	"github.com/pescuma/casket/lib/model"
	"github.com/pescuma/casket/lib/parts"
)

type TaggedMesh struct {
	Name string             `json:"name"`
	Part model.PartCategory `json:"-"`
}

// AssetTags is the result of auto-tagging the meshes of a loaded asset. It is diagnostic only.
type AssetTags struct {
	Tagged    []TaggedMesh
	Unmatched []string
	Parts     *set.Set[model.PartCategory]
}

// Missing lists the categories no mesh was tagged with, in declaration order.
func (a *AssetTags) Missing() []model.PartCategory {
	var result []model.PartCategory
	for _, p := range model.AllParts() {
		if !a.Parts.Contains(p) {
			result = append(result, p)
		}
	}
	return result
}

func (a *AssetTags) ByPart() map[model.PartCategory][]string {
	result := map[model.PartCategory][]string{}
	for _, t := range a.Tagged {
		result[t.Part] = append(result[t.Part], t.Name)
	}
	for _, names := range result {
		sort.Strings(names)
	}
	return result
}

// TagAsset classifies mesh names. Unmatched names are collected without logging.
func TagAsset(console consoles.Console, names []string) *AssetTags {
	result := &AssetTags{
		Parts: set.New[model.PartCategory](model.PartCount),
	}

	for _, name := range names {
		p, ok := parts.Identify(name)
		if !ok {
			result.Unmatched = append(result.Unmatched, name)
			continue
		}

		console.Printf("Identified mesh %v as %v\n", name, p)

		result.Tagged = append(result.Tagged, TaggedMesh{Name: name, Part: p})
		result.Parts.Insert(p)
	}

	return result
}

// FindLid returns the node that drives the lid animation. Every node whose name holds a cap keyword is
// a candidate and the last one wins, so a child node overrides its parent.
func FindLid(names []string) (string, bool) {
	kws := parts.Keywords(model.Cap)

	result := ""
	found := false
	for _, name := range names {
		lower := cases.Lower(language.Und).String(name)
		for _, kw := range kws {
			if strings.Contains(lower, kw) {
				result = name
				found = true
				break
			}
		}
	}

	return result, found
}
