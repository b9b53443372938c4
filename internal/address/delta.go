package address

import (
	"fmt"
	"sync"

	"github.com/grantspass-gis/addrpoint/internal/progress"
)

// Delta records the spatial drift of one address relative to a record with
// the same label in another dataset.
type Delta struct {
	Label     string
	ObjectID  string
	X         float64
	Y         float64
	Latitude  float64
	Longitude float64
	Delta     float64
}

// Deltas is a drift report.
type Deltas []Delta

// Header returns the CSV column names for a drift report.
func (Deltas) Header() []string {
	return []string{"label", "object_id", "x", "y", "latitude", "longitude", "delta"}
}

// Rows renders the report for CSV export.
func (ds Deltas) Rows() [][]string {
	out := make([][]string, len(ds))
	for i, d := range ds {
		out[i] = []string{
			d.Label,
			d.ObjectID,
			fmt.Sprintf("%f", d.X),
			fmt.Sprintf("%f", d.Y),
			fmt.Sprintf("%f", d.Latitude),
			fmt.Sprintf("%f", d.Longitude),
			fmt.Sprintf("%f", d.Delta),
		}
	}
	return out
}

// delta collects drift records for one subject against every label match in
// other, keeping only drift above min.
func (a *Address) delta(other Addresses, min float64) Deltas {
	var out Deltas
	label := a.Label()
	for i := range other {
		o := &other[i]
		if o.Label() != label {
			continue
		}
		d := o.Distance(a)
		if d > min {
			out = append(out, Delta{
				Label:     o.Label(),
				ObjectID:  o.ObjectID,
				X:         o.Point.X(),
				Y:         o.Point.Y(),
				Latitude:  o.Latitude,
				Longitude: o.Longitude,
				Delta:     d,
			})
		}
	}
	return out
}

// Deltas computes spatial drift for every subject against other. Subjects
// are partitioned across workers; each worker reads other immutably and
// writes only its own result slot, so the output follows subject input
// order.
func (as Addresses) Deltas(other Addresses, min float64, workers int, rep progress.Reporter) Deltas {
	if workers < 1 {
		workers = 1
	}
	rep.Start("calculating deltas", len(as))

	results := make([]Deltas, len(as))
	jobs := make(chan int, len(as))
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = as[i].delta(other, min)
				rep.Tick()
			}
		}()
	}
	for i := range as {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	var out Deltas
	for _, r := range results {
		out = append(out, r...)
	}
	rep.Done("calculating deltas")
	return out
}
