package entities

const (
	BulkStatusSuccess        = "success"
	BulkStatusPartialSuccess = "partial_success"
)

// BulkUpdateResult partitions the requested order ids by outcome, keeping input order.
type BulkUpdateResult struct {
	Success []string
	Failed  []string
}

func (r BulkUpdateResult) Status() string {
	if len(r.Failed) == 0 {
		return BulkStatusSuccess
	}
	return BulkStatusPartialSuccess
}
