package constants

// DocStatus tracks one document through the processing pipeline.
type DocStatus string

// A document only moves forward; OCR or classification failure is absorbed
// into an UNKNOWN result, so there is no terminal error state.
const (
	DocStatusPending     DocStatus = "PENDING"
	DocStatusExtracting  DocStatus = "PAGES_EXTRACTING" // per-page OCR in flight
	DocStatusMerging     DocStatus = "MERGING"          // page results being merged
	DocStatusClassifying DocStatus = "CLASSIFYING"      // type + cost derivation
	DocStatusDone        DocStatus = "DONE"
)
