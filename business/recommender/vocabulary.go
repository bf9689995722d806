package recommender

// Controlled vocabulary mapping the stored preference values to product-intent
// phrases. The keys are the exact enum values the preference form writes;
// values outside these tables expand to "" so a typo in stored data degrades
// the query instead of failing the request (the miss is still counted, see
// metrics.go).

var skinConditionKeywords = map[string]string{
	"berminyak": "oil control minyak sebum",
	"kering":    "moisturizer pelembab hydrating",
	"kombinasi": "balance seimbang combination",
	"sensitif":  "gentle sensitive hypoallergenic",
	"normal":    "daily maintenance normal",
}

var skinProblemKeywords = map[string]string{
	"jerawat":    "acne anti jerawat salicylic",
	"komedo":     "blackhead whitehead pore",
	"kusam":      "brightening whitening vitamin c",
	"kerutan":    "anti aging retinol wrinkle",
	"flek_hitam": "dark spot niacinamide",
	"pori_besar": "pore minimizer tightening",
}

func skinConditionFragment(condition string) string {
	if condition == "" {
		return ""
	}

	phrase, ok := skinConditionKeywords[condition]
	if !ok {
		unknownPreferenceValues.WithLabelValues("kondisi_kulit").Inc()
		return ""
	}

	return phrase
}

func skinProblemFragment(problem string) string {
	if problem == "" {
		return ""
	}

	phrase, ok := skinProblemKeywords[problem]
	if !ok {
		unknownPreferenceValues.WithLabelValues("masalah_kulit").Inc()
		return ""
	}

	return phrase
}
