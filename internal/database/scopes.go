package database

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yukikurage/employee-management-api/internal/utils"
)

const likeEscape = "!"

// Paginate applies pagination to a GORM query
func Paginate(params utils.PaginationParams) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(params.Offset).Limit(params.Limit)
	}
}

// ContainsFold matches rows where any of columns contains term, ignoring
// case. LIKE metacharacters in term match literally. Column names are
// interpolated and must never come from user input.
func ContainsFold(term string, columns ...string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if term == "" || len(columns) == 0 {
			return db
		}

		pattern := "%" + EscapeLike(strings.ToLower(term)) + "%"
		conds := make([]string, len(columns))
		args := make([]interface{}, len(columns))
		for i, col := range columns {
			conds[i] = fmt.Sprintf("LOWER(%s) LIKE ? ESCAPE '%s'", col, likeEscape)
			args[i] = pattern
		}

		return db.Where("("+strings.Join(conds, " OR ")+")", args...)
	}
}

// OrderBy sorts by column and then by id in the same direction, so rows
// that tie on column still come back in a fixed order.
func OrderBy(table, column string, desc bool) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		db = db.Order(clause.OrderByColumn{Column: clause.Column{Table: table, Name: column}, Desc: desc})
		if column != "id" {
			db = db.Order(clause.OrderByColumn{Column: clause.Column{Table: table, Name: "id"}, Desc: desc})
		}
		return db
	}
}

// EscapeLike escapes LIKE wildcards in s for use with ESCAPE '!'.
func EscapeLike(s string) string {
	r := strings.NewReplacer(
		likeEscape, likeEscape+likeEscape,
		"%", likeEscape+"%",
		"_", likeEscape+"_",
	)
	return r.Replace(s)
}
