package models

import (
	"bitbucket.org/greenfields/farmbooks_backend/config"
	"bitbucket.org/greenfields/farmbooks_backend/utils"
	"gorm.io/gorm"
)

// MatchType selects the text predicate applied to an entity's designated
// text column. Comparisons follow the store's collation; the engine never
// folds case in Go, so all match types behave consistently.
type MatchType string

const (
	MatchTypeNone    MatchType = "None"
	MatchTypeExact   MatchType = "Exact"
	MatchTypePrefix  MatchType = "Prefix"
	MatchTypeSuffix  MatchType = "Suffix"
	MatchTypePartial MatchType = "Partial"
)

type SearchCriteria struct {
	Text           string    `json:"text"`
	MatchType      MatchType `json:"match_type"`
	Page           int       `json:"page"`
	PageSize       int       `json:"page_size"`
	SortKey        string    `json:"sort_key"`
	SortDescending bool      `json:"sort_descending"`
}

type SearchResult[T any] struct {
	Items      []*T  `json:"items"`
	TotalCount int64 `json:"total_count"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
}

// Normalize clamps paging to the configured bounds. Out-of-range values are
// field-validation failures upstream; this is the engine's own guard.
func (c *SearchCriteria) Normalize() {
	if c.Page < 1 {
		c.Page = 1
	}
	if c.PageSize < 1 {
		c.PageSize = config.DefaultPageSize
	}
	if c.PageSize > config.MaxPageSize {
		c.PageSize = config.MaxPageSize
	}
	if c.MatchType == "" {
		c.MatchType = MatchTypeNone
	}
}

// MatchScope builds the text predicate for one search. Empty text means no
// filter regardless of match type. LIKE wildcards in the text are escaped so
// they match literally.
func MatchScope(column string, matchType MatchType, text string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if matchType == MatchTypeNone || text == "" {
			return db
		}
		switch matchType {
		case MatchTypeExact:
			return db.Where(column+" = ?", text)
		case MatchTypePrefix:
			return db.Where(column+" LIKE ? ESCAPE '"+utils.LikeEscapeChar+"'", utils.EscapeLike(text)+"%")
		case MatchTypeSuffix:
			return db.Where(column+" LIKE ? ESCAPE '"+utils.LikeEscapeChar+"'", "%"+utils.EscapeLike(text))
		case MatchTypePartial:
			return db.Where(column+" LIKE ? ESCAPE '"+utils.LikeEscapeChar+"'", "%"+utils.EscapeLike(text)+"%")
		}
		return db
	}
}

// resolveSortColumn maps an entity-specific sort key to its column. An empty
// key falls back to the entity default; unknown keys are rejected.
func resolveSortColumn(sortKey string, allowed map[string]string, defaultColumn string) (string, error) {
	if sortKey == "" {
		return defaultColumn, nil
	}
	column, ok := allowed[sortKey]
	if !ok {
		return "", utils.NewInvalidOperation("invalid sort key: " + sortKey)
	}
	return column, nil
}

// SearchPage runs the filter/sort/paginate pipeline for kind T. dbCtx carries
// any entity-specific equality filters already applied by the caller.
// TotalCount is taken before slicing so a page past the end returns empty
// items with the correct count.
func SearchPage[T any](dbCtx *gorm.DB, textColumn string, sortColumn string, criteria SearchCriteria) (*SearchResult[T], error) {
	criteria.Normalize()

	var model T
	base := dbCtx.Model(&model).
		Scopes(MatchScope(textColumn, criteria.MatchType, criteria.Text)).
		Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, err
	}

	order := sortColumn
	if criteria.SortDescending {
		order += " DESC"
	}

	items := make([]*T, 0)
	offset := (criteria.Page - 1) * criteria.PageSize
	if err := base.Order(order).Offset(offset).Limit(criteria.PageSize).Find(&items).Error; err != nil {
		return nil, err
	}

	return &SearchResult[T]{
		Items:      items,
		TotalCount: total,
		Page:       criteria.Page,
		PageSize:   criteria.PageSize,
	}, nil
}
