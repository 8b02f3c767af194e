package convert

// Field names the normalizer guarantees.
const (
	FieldID             = "id"
	FieldName           = "name"
	FieldTitle          = "title"
	FieldQuadrant       = "quadrant"
	FieldRing           = "ring"
	FieldOrder          = "order"
	FieldStatus         = "status"
	FieldRequiresSkills = "requiresSkills"
	FieldTaughtByUnits  = "taughtByUnits"
	FieldKitTags        = "kitTags"
)

// DefaultKitTags is the kitTags scaffold used when none is configured.
var DefaultKitTags = []string{"govuk", "nhs"}

// Normalize fills in the skill fields that are missing from doc. Existing
// values are never replaced or validated.
//
// id and name default to slug; title defaults to name, so an input carrying
// only a name gets that name as its title. The relationship fields are
// scaffolded as lists for later hand editing: requiresSkills and
// taughtByUnits empty, kitTags set to kitTags (DefaultKitTags when nil).
func Normalize(doc *Document, slug string, kitTags []string) {
	if kitTags == nil {
		kitTags = DefaultKitTags
	}

	doc.SetDefault(FieldID, Scalar(slug))
	doc.SetDefault(FieldName, Scalar(slug))

	title := Scalar(slug)
	if name, ok := doc.Get(FieldName); ok {
		title = name
	}
	doc.SetDefault(FieldTitle, title)

	doc.SetDefault(FieldRequiresSkills, List())
	doc.SetDefault(FieldTaughtByUnits, List())
	doc.SetDefault(FieldKitTags, List(kitTags...))
}
