package types

// SendOutcome is the typed result of a best-effort notification attempt.
// Delivery failures never fail the primary operation; callers log the
// outcome instead of discarding the error.
type SendOutcome struct {
	Recipient string `json:"recipient"`
	Sent      bool   `json:"sent"`
	Reason    string `json:"reason,omitempty"`
}

func OutcomeSent(recipient string) SendOutcome {
	return SendOutcome{Recipient: recipient, Sent: true}
}

func OutcomeFailed(recipient string, err error) SendOutcome {
	o := SendOutcome{Recipient: recipient}
	if err != nil {
		o.Reason = err.Error()
	}
	return o
}

// SendStats aggregates a fan-out of SendOutcome values.
type SendStats struct {
	Total  int `json:"total"`
	Sent   int `json:"sent"`
	Failed int `json:"failed"`
}

func CollectStats(outcomes []SendOutcome) SendStats {
	st := SendStats{Total: len(outcomes)}
	for _, o := range outcomes {
		if o.Sent {
			st.Sent++
		} else {
			st.Failed++
		}
	}
	return st
}
