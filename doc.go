// Package passnet trains a small dense feed-forward classifier on a
// two-feature study-habits dataset (weekly study hours and attendance rate)
// and answers pass/fail probability queries against it.
//
// The pipeline runs in a strict order: load, normalize, build, fit, predict.
// The subpackage "dataset" handles the first two stages:
//
//	ds, err := dataset.LoadFile("students.csv")
//	// ...
//	recs, ranges, err := dataset.Normalize(ds)
//
// Models are built from a Config and trained in place:
//
//	net, err := passnet.New(passnet.Config{HiddenLayers: []int{8, 4}, LearningRate: 0.01})
//	// ...
//	xs, ys := dataset.Tensors(recs)
//	err = net.Fit(xs, ys, 50, func(m passnet.EpochMetric) error {
//		fmt.Printf("[%3d] loss: %.5f, correct: %.3f\n", m.Epoch, m.Loss, m.Correct)
//		return nil
//	})
//
// The per-epoch callback is the cooperative suspension point: it runs
// synchronously after each epoch, and returning an error from it abandons the
// remaining epochs while keeping the weights already learned.
//
// Prediction never fails; it degrades to 0 for implausible input:
//
//	p := net.Predict(passnet.Query{HoursStudied: 20, AttendanceRate: 80}, ranges)
//
// Session ties the stages together for hosts that retrain repeatedly (a UI,
// for example), owning the model, its ranges, and the metric history as one
// unit.
//
// Cost functions, optimizers, and weight initializers are pluggable through
// options on New; implementations live in the subpackages "costfuncs",
// "optimizers", and "initializers".
package passnet
