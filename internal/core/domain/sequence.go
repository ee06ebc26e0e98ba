package domain

// Sequence counter categories. One persisted counter exists per category;
// values are strictly increasing and never reused across restarts.
const (
	SeqPurchases        = "purchases"
	SeqSales            = "sales"
	SeqReferenceReports = "reference_reports"
)

// SequenceWidth is the zero-padded width of minted document numbers.
const SequenceWidth = 13
