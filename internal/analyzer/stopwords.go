package analyzer

// DefaultStopwords returns the standard English stopword set used at both
// indexing and query time. Entries are lowercase; matching happens after
// the pipeline has already lowercased and de-punctuated the input.
func DefaultStopwords() map[string]struct{} {
	words := []string{
		"a", "an", "the", "and", "or", "but", "nor", "not", "no",
		"to", "in", "of", "on", "for", "with", "as", "at", "by",
		"from", "into", "onto", "about", "above", "below", "under",
		"over", "out", "up", "down", "off", "between", "through",
		"is", "are", "was", "were", "be", "been", "being", "am",
		"do", "does", "did", "doing", "have", "has", "had", "having",
		"i", "me", "my", "myself", "we", "our", "ours", "ourselves",
		"you", "your", "yours", "yourself", "yourselves",
		"he", "him", "his", "himself", "she", "her", "hers", "herself",
		"it", "its", "itself", "they", "them", "their", "theirs",
		"themselves", "what", "which", "who", "whom", "this", "that",
		"these", "those", "will", "would", "can", "could", "should",
		"may", "might", "must", "shall",
		"if", "then", "else", "than", "so", "because", "while",
		"when", "where", "why", "how", "all", "any", "both", "each",
		"few", "more", "most", "other", "some", "such", "only",
		"own", "same", "too", "very", "just", "again", "further",
		"once", "here", "there", "during", "before", "after",
	}
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
