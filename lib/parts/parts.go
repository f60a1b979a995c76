package parts

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/pescuma/casket/lib/model"
)

type keywords struct {
	part     model.PartCategory
	keywords []string
}

// Order is significant: the first category with a matching keyword wins, so a name holding keywords
// of two categories resolves to the one declared first here. Matching is by substring.
var table = []keywords{
	{model.Body, []string{"body", "main", "shell", "base"}},
	{model.Cap, []string{"lid", "cap", "top"}},
	{model.Handle, []string{"handle", "grip", "bar"}},
	{model.EndCap, []string{"endcap", "corner", "end"}},
	{model.Pillow, []string{"pillow", "cushion"}},
	{model.Moulding, []string{"mould", "trim", "edge", "border"}},
	{model.Interior, []string{"interior", "lining", "inside", "inner"}},
	{model.Hardware, []string{"hardware", "hinge", "latch", "screw", "nail", "pin"}},
}

// Identify classifies a mesh or node name. The second result is false when no category matches, which
// is an expected outcome for many names.
func Identify(name string) (model.PartCategory, bool) {
	name = cases.Lower(language.Und).String(name)

	for _, k := range table {
		for _, kw := range k.keywords {
			if strings.Contains(name, kw) {
				return k.part, true
			}
		}
	}

	return 0, false
}

// Keywords returns a copy of the keywords used for a category.
func Keywords(part model.PartCategory) []string {
	for _, k := range table {
		if k.part == part {
			result := make([]string, len(k.keywords))
			copy(result, k.keywords)
			return result
		}
	}
	return nil
}
