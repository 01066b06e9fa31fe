package sweet

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/heartmarshall/sweetshop-backend/internal/domain"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE pattern matching s anywhere, with wildcards in s escaped.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

// filterConditions turns a SweetFilter into ANDed predicates. Nil fields add nothing.
func filterConditions(f domain.SweetFilter) sq.And {
	conds := sq.And{}
	if f.Name != nil {
		conds = append(conds, sq.ILike{"name": containsPattern(*f.Name)})
	}
	if f.Category != nil {
		conds = append(conds, sq.ILike{"category": containsPattern(*f.Category)})
	}
	if f.MinPrice != nil {
		conds = append(conds, sq.GtOrEq{"price": *f.MinPrice})
	}
	if f.MaxPrice != nil {
		conds = append(conds, sq.LtOrEq{"price": *f.MaxPrice})
	}
	return conds
}
