package ingest

// Pipeline runs the text stages of extraction:
// text → sentences → candidate keyphrases
type Pipeline struct {
	extractor *Extractor
}

// NewPipeline creates an ingestion pipeline with the given extractor
func NewPipeline(extractor *Extractor) *Pipeline {
	return &Pipeline{extractor: extractor}
}

// ProcessedDoc holds the output of the text stages
type ProcessedDoc struct {
	Sentences  []string
	Candidates []string
}

// Process segments text and extracts candidate phrases from it
func (p *Pipeline) Process(text string) ProcessedDoc {
	sentences := Segment(text)
	return ProcessedDoc{
		Sentences:  sentences,
		Candidates: p.extractor.Extract(sentences),
	}
}
