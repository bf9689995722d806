package recommender

import (
	"strings"

	"mySkinMatch/domain"
)

// BuildQueryText synthesizes one normalized query string from the profile.
// Fragment order is fixed: condition phrase, problem phrase, product-type
// preference (unless "semua"), stored preference keywords, ad-hoc search
// keywords. Absent fragments are skipped; unknown categorical values expand
// to nothing.
func BuildQueryText(profile domain.PreferenceProfile) string {
	parts := make([]string, 0, 5)

	if frag := skinConditionFragment(profile.SkinCondition); frag != "" {
		parts = append(parts, frag)
	}
	if frag := skinProblemFragment(profile.SkinProblem); frag != "" {
		parts = append(parts, frag)
	}

	if profile.ProductPreference != "" && profile.ProductPreference != domain.ProductPreferenceAll {
		parts = append(parts, profile.ProductPreference)
	}

	if profile.PreferenceKeywords != "" {
		parts = append(parts, profile.PreferenceKeywords)
	}

	if profile.SearchKeywords != "" && profile.SearchKeywords != profile.PreferenceKeywords {
		parts = append(parts, profile.SearchKeywords)
	}

	return CleanText(strings.Join(parts, " "))
}
