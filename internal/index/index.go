package index

import (
	"bytes"
	"cmp"
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/thoreinstein/radar2mdx/internal/errors"
	"github.com/thoreinstein/radar2mdx/internal/logging"
	"github.com/thoreinstein/radar2mdx/internal/validator"
	"github.com/thoreinstein/radar2mdx/pkg/fileutil"
	"github.com/thoreinstein/radar2mdx/pkg/frontmatter"
)

// SkillType is the only accepted value of the type frontmatter key.
const SkillType = "skill"

// Extensions lists the file extensions Build reads.
var Extensions = []string{".mdx", ".md"}

// Index is the encoded form of a skill directory.
type Index struct {
	Source string  `json:"source" yaml:"source" toml:"source"`
	Skills []Skill `json:"skills" yaml:"skills" toml:"skills"`
}

// Build reads every skill file directly inside dir and returns the sorted
// index together with the issues found.
//
// Files that cannot be decoded or declare a type other than "skill" are
// recorded as errors and left out of the index. The returned error is
// reserved for I/O failures and cancellation.
func Build(ctx context.Context, dir string) (*Index, *validator.Result, error) {
	logger := logging.FromContext(ctx)
	result := &validator.Result{}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "listing %s", dir)
	}

	idx := &Index{Source: dir, Skills: []Skill{}}
	seen := make(map[string]string) // id -> file that first declared it
	for _, entry := range entries {
		if entry.IsDir() || !slices.Contains(Extensions, filepath.Ext(entry.Name())) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, nil, errors.Wrap(err, "indexing interrupted")
		}

		path := filepath.Join(dir, entry.Name())
		skill, ok, err := readSkill(path, result)
		if err != nil {
			return nil, nil, err
		}
		if !ok {
			logger.Debug("skipped skill file", "file", path)
			continue
		}
		if first, dup := seen[skill.ID]; dup {
			result.AddError("id", "duplicate skill id (first declared in "+first+")", skill.ID).In(entry.Name())
			continue
		}
		seen[skill.ID] = entry.Name()

		logger.Debug("indexed skill", "file", path, "id", skill.ID)
		idx.Skills = append(idx.Skills, skill)
	}

	Sort(idx.Skills)
	logger.Info("index built",
		"dir", dir,
		"skills", len(idx.Skills),
		"issues", len(result.Issues))

	return idx, result, nil
}

// readSkill decodes one file. ok is false when the file was rejected and an
// error issue was added to result.
func readSkill(path string, result *validator.Result) (skill Skill, ok bool, err error) {
	name := filepath.Base(path)

	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		return Skill{}, false, err
	}

	meta, body, err := frontmatter.Parse[map[string]any](bytes.NewReader(data))
	switch {
	case errors.Is(err, frontmatter.ErrNoFrontmatter):
		meta, body = &map[string]any{}, string(data)
	case errors.Is(err, frontmatter.ErrInvalidYAML):
		result.AddError("", "frontmatter is not valid YAML", nil).In(name)
		return Skill{}, false, nil
	case err != nil:
		return Skill{}, false, errors.Wrapf(err, "parsing %s", path)
	}
	d := *meta
	if d == nil {
		d = map[string]any{}
	}

	id := stringValue(d["id"])
	if id == "" {
		id = strings.TrimSuffix(name, filepath.Ext(name))
		result.AddWarning("id", "missing, using filename", nil).In(name)
	}

	if t := stringValue(d["type"]); t != "" && t != SkillType {
		result.AddError("type", "expected "+SkillType, t).In(name)
		return Skill{}, false, nil
	}

	title := stringValue(d["title"])
	displayName := cmp.Or(stringValue(d["name"]), title, id)
	if title == "" && stringValue(d["name"]) == "" {
		result.AddWarning("title", "missing title and name", nil).In(name)
	}

	order, valid := orderValue(d["order"])
	if !valid {
		result.AddWarning("order", "not a number, ignored", d["order"]).In(name)
	}

	quadrant := stringValue(d["quadrant"])
	ring := stringValue(d["ring"])

	return Skill{
		ID:             id,
		Name:           displayName,
		Title:          title,
		Description:    ExtractDescription(body),
		Quadrant:       quadrant,
		Ring:           ring,
		CategoryID:     cmp.Or(stringValue(d["categoryId"]), Slugify(quadrant)),
		LevelID:        cmp.Or(stringValue(d["levelId"]), Slugify(ring)),
		Order:          order,
		Status:         stringValue(d["status"]),
		RequiresSkills: stringList(d["requiresSkills"]),
		Prereqs:        stringList(d["prereqs"]),
		TaughtByUnits:  stringList(d["taughtByUnits"]),
		KitTags:        stringList(d["kitTags"]),
		SourcePath:     path,
	}, true, nil
}

// Sort orders skills by order, then title (or id when untitled), then id.
func Sort(skills []Skill) {
	slices.SortStableFunc(skills, func(a, b Skill) int {
		return cmp.Or(
			cmp.Compare(a.sortOrder(), b.sortOrder()),
			strings.Compare(a.sortTitle(), b.sortTitle()),
			strings.Compare(a.ID, b.ID),
		)
	})
}
