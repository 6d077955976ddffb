package strbundle

// PluralRule maps a quantity to a 0-based plural form index. The index selects
// one of the delimiter-separated sub-forms of a pluralized template. Negative
// quantities are treated by their absolute value.
type PluralRule func(n int) int

// DefaultPluralRuleID is used when a table defines no pluralRule key. It is
// the two-form boundary-at-1 rule of the reference locale.
const DefaultPluralRuleID = 1

// RuleOneForm covers languages with a single grammatical form for all
// quantities (Chinese, Japanese, Korean, Thai, Vietnamese).
var RuleOneForm PluralRule = func(_ int) int {
	return 0
}

// RuleEnglish covers Germanic-style two-form languages: singular only at
// exactly 1 (English, German, Dutch, Swedish, Spanish, Italian, ...).
var RuleEnglish PluralRule = func(n int) int {
	if abs(n) == 1 {
		return 0
	}
	return 1
}

// RuleFrench covers two-form languages where 0 and 1 are both singular
// (French, Brazilian Portuguese).
var RuleFrench PluralRule = func(n int) int {
	if abs(n) <= 1 {
		return 0
	}
	return 1
}

// RuleLatvian: three forms. Form 1 for numbers ending in 1 except those
// ending in 11, form 2 for everything else, form 0 for zero.
var RuleLatvian PluralRule = func(n int) int {
	n = abs(n)
	switch {
	case n%10 == 1 && n%100 != 11:
		return 1
	case n != 0:
		return 2
	default:
		return 0
	}
}

// RuleScottishGaelic: four forms keyed on 1/11, 2/12, 3-19, everything else.
var RuleScottishGaelic PluralRule = func(n int) int {
	n = abs(n)
	switch {
	case n == 1 || n == 11:
		return 0
	case n == 2 || n == 12:
		return 1
	case n > 0 && n < 20:
		return 2
	default:
		return 3
	}
}

// RuleRomanian: three forms. Singular at 1; a second form for 0 and for
// numbers whose last two digits fall in 01-19; a third for the rest.
var RuleRomanian PluralRule = func(n int) int {
	n = abs(n)
	switch {
	case n == 1:
		return 0
	case n == 0 || (n%100 > 0 && n%100 < 20):
		return 1
	default:
		return 2
	}
}

// RuleLithuanian: three forms keyed on the last digit with 11-19 exceptions.
var RuleLithuanian PluralRule = func(n int) int {
	n = abs(n)
	switch {
	case n%10 == 1 && n%100 != 11:
		return 0
	case n%10 >= 2 && (n%100 < 10 || n%100 >= 20):
		return 2
	default:
		return 1
	}
}

// RuleRussian covers the Slavic three-form pattern shared by Russian,
// Ukrainian, Serbian and Croatian: ends-in-1 (not 11), ends-in-2..4
// (not 12..14), everything else.
var RuleRussian PluralRule = func(n int) int {
	n = abs(n)
	switch {
	case n%10 == 1 && n%100 != 11:
		return 0
	case n%10 >= 2 && n%10 <= 4 && (n%100 < 10 || n%100 >= 20):
		return 1
	default:
		return 2
	}
}

// RuleCzech covers Czech and Slovak: 1, 2-4, everything else.
var RuleCzech PluralRule = func(n int) int {
	n = abs(n)
	switch {
	case n == 1:
		return 0
	case n >= 2 && n <= 4:
		return 1
	default:
		return 2
	}
}

// RulePolish: singular at 1, ends-in-2..4 (not 12..14), everything else.
var RulePolish PluralRule = func(n int) int {
	n = abs(n)
	switch {
	case n == 1:
		return 0
	case n%10 >= 2 && n%10 <= 4 && (n%100 < 10 || n%100 >= 20):
		return 1
	default:
		return 2
	}
}

// RuleSlovenian: four forms keyed on the last two digits (1, 2, 3-4, rest).
var RuleSlovenian PluralRule = func(n int) int {
	switch abs(n) % 100 {
	case 1:
		return 0
	case 2:
		return 1
	case 3, 4:
		return 2
	default:
		return 3
	}
}

// RuleIrish: five forms (1, 2, 3-6, 7-10, rest).
var RuleIrish PluralRule = func(n int) int {
	n = abs(n)
	switch {
	case n == 1:
		return 0
	case n == 2:
		return 1
	case n >= 3 && n <= 6:
		return 2
	case n >= 7 && n <= 10:
		return 3
	default:
		return 4
	}
}

// RuleArabic: six forms (0, 1, 2, 03-10 by hundreds, 11-99 by hundreds, rest).
var RuleArabic PluralRule = func(n int) int {
	n = abs(n)
	switch {
	case n == 0:
		return 0
	case n == 1:
		return 1
	case n == 2:
		return 2
	case n%100 >= 3 && n%100 <= 10:
		return 3
	case n%100 >= 11 && n%100 <= 99:
		return 4
	default:
		return 5
	}
}

// RuleMaltese: four forms (1; 0 or 02-10 by hundreds; 11-19 by hundreds; rest).
var RuleMaltese PluralRule = func(n int) int {
	n = abs(n)
	switch {
	case n == 1:
		return 0
	case n == 0 || (n%100 > 1 && n%100 < 11):
		return 1
	case n%100 > 10 && n%100 < 20:
		return 2
	default:
		return 3
	}
}

// RuleMacedonian: three forms keyed on the last digit (1, 2, rest).
var RuleMacedonian PluralRule = func(n int) int {
	switch abs(n) % 10 {
	case 1:
		return 0
	case 2:
		return 1
	default:
		return 2
	}
}

// RuleIcelandic: two forms, singular for numbers ending in 1 except 11.
var RuleIcelandic PluralRule = func(n int) int {
	n = abs(n)
	if n%10 == 1 && n%100 != 11 {
		return 0
	}
	return 1
}

// RuleBreton: five forms with exceptions around 11-19, 71-79 and 91-99.
var RuleBreton PluralRule = func(n int) int {
	n = abs(n)
	m10, m100 := n%10, n%100
	switch {
	case m10 == 1 && m100 != 11 && m100 != 71 && m100 != 91:
		return 0
	case m10 == 2 && m100 != 12 && m100 != 72 && m100 != 92:
		return 1
	case (m10 == 3 || m10 == 4 || m10 == 9) &&
		m100 != 13 && m100 != 14 && m100 != 19 &&
		m100 != 73 && m100 != 74 && m100 != 79 &&
		m100 != 93 && m100 != 94 && m100 != 99:
		return 2
	case n != 0 && n%1000000 == 0:
		return 3
	default:
		return 4
	}
}

// ruleEntry binds a rule to the number of forms it can select, used for
// bounds validation of pluralized templates.
type ruleEntry struct {
	rule  PluralRule
	forms int
}

// The registry is closed: template tables select a family by numeric id via
// the reserved pluralRule key. Ids are stable; new families append.
var pluralRules = []ruleEntry{
	0:  {RuleOneForm, 1},
	1:  {RuleEnglish, 2},
	2:  {RuleFrench, 2},
	3:  {RuleLatvian, 3},
	4:  {RuleScottishGaelic, 4},
	5:  {RuleRomanian, 3},
	6:  {RuleLithuanian, 3},
	7:  {RuleRussian, 3},
	8:  {RuleCzech, 3},
	9:  {RulePolish, 3},
	10: {RuleSlovenian, 4},
	11: {RuleIrish, 5},
	12: {RuleArabic, 6},
	13: {RuleMaltese, 4},
	14: {RuleMacedonian, 3},
	15: {RuleIcelandic, 2},
	16: {RuleBreton, 5},
}

// RuleByID returns the plural rule registered under id together with the
// number of forms it selects between. Unknown ids return ErrUnknownPluralRule.
func RuleByID(id int) (PluralRule, int, error) {
	if id < 0 || id >= len(pluralRules) {
		return nil, 0, ErrUnknownPluralRule
	}
	entry := pluralRules[id]
	return entry.rule, entry.forms, nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
