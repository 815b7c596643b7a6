// Package biolink translates vocabulary terms between the two TRAPI naming
// conventions.
//
// TRAPI 0.9.2 writes bare terms: snake_case for both node types
// ("chemical_substance") and edge types ("related_to"). TRAPI 1.0.0 writes
// CURIEs under the biolink prefix: PascalCase for categories
// ("biolink:ChemicalSubstance") and snake_case for predicates
// ("biolink:related_to").
//
// SnakeCase and PascalCase are only inverses of each other for terms shaped
// like the Biolink vocabulary. Digits, runs of capitals and other punctuation
// are not guaranteed to survive a round trip.
package biolink

import (
	"strings"

	"github.com/translator-tools/reasoner-converter/api/common"
)

const Prefix = "biolink:"

// HasPrefix reports whether term is already a biolink CURIE.
func HasPrefix(term string) bool {
	return strings.HasPrefix(term, Prefix)
}

func stripPrefix(term string) string {
	return strings.TrimPrefix(term, Prefix)
}

// UpgradeEntity turns a 0.9.2 node type into a 1.0.0 category.
func UpgradeEntity(term string) string {
	if HasPrefix(term) {
		return term
	}
	return Prefix + pascalCase(term)
}

// DowngradeEntity turns a 1.0.0 category into a 0.9.2 node type.
func DowngradeEntity(term string) string {
	return snakeCase(stripPrefix(term))
}

// UpgradePredicate turns a 0.9.2 edge type into a 1.0.0 predicate. A nil term
// stays nil.
func UpgradePredicate(term *string) *string {
	if term == nil {
		return nil
	}
	out := upgradePredicate(*term)
	return &out
}

// DowngradePredicate turns a 1.0.0 predicate into a 0.9.2 edge type. A nil
// term stays nil.
func DowngradePredicate(term *string) *string {
	if term == nil {
		return nil
	}
	out := stripPrefix(*term)
	return &out
}

func upgradePredicate(term string) string {
	if HasPrefix(term) {
		return term
	}
	return Prefix + snakeCase(term)
}

// UpgradeEntities applies UpgradeEntity to every term, keeping the arity.
func UpgradeEntities(terms common.OneOrMany[string]) common.OneOrMany[string] {
	return common.MapOneOrMany(terms, UpgradeEntity)
}

// DowngradeEntities applies DowngradeEntity to every term, keeping the arity.
func DowngradeEntities(terms common.OneOrMany[string]) common.OneOrMany[string] {
	return common.MapOneOrMany(terms, DowngradeEntity)
}

// UpgradePredicates upgrades every predicate term, keeping the arity.
func UpgradePredicates(terms common.OneOrMany[string]) common.OneOrMany[string] {
	return common.MapOneOrMany(terms, upgradePredicate)
}

// DowngradePredicates strips the prefix from every predicate term, keeping
// the arity.
func DowngradePredicates(terms common.OneOrMany[string]) common.OneOrMany[string] {
	return common.MapOneOrMany(terms, stripPrefix)
}
