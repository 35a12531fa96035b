package node

// IMetric collects listener activity
type IMetric interface {
	IncAccepted()
	IncAcceptErrored()
	IncDispatchErrored()
	IncActive()
	DecActive()
}

type nopMetric struct{}

func (nopMetric) IncAccepted()        {}
func (nopMetric) IncAcceptErrored()   {}
func (nopMetric) IncDispatchErrored() {}
func (nopMetric) IncActive()          {}
func (nopMetric) DecActive()          {}
