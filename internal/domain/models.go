package domain

// Record is one question/answer pair. It has no identity of its own: its
// address is its current position in the store.
type Record struct {
	Question string `json:"question" yaml:"question"`
	Answer   string `json:"answer" yaml:"answer"`
}

// IndexedRecord pairs a record with the index it occupies at enumeration time.
type IndexedRecord struct {
	Index  int
	Record Record
}

// SeedRecords returns the quizzes a fresh local store starts with.
func SeedRecords() []Record {
	return []Record{
		{Question: "Capital de Italia", Answer: "Roma"},
		{Question: "Capital de Francia", Answer: "París"},
		{Question: "Capital de España", Answer: "Madrid"},
		{Question: "Capital de Portugal", Answer: "Lisboa"},
	}
}
