// Package strength estimates password strength, returning a normalized
// 0–100 score, a qualitative label, and short imperative improvement hints.
//
// Two interchangeable estimation strategies sit behind the Estimator:
//
//   - The advanced strategy delegates to the zxcvbn entropy model
//     (github.com/nbutton23/zxcvbn-go), which matches the password against
//     dictionaries, sequences, keyboard patterns, and dates.
//   - The basic strategy is a self-contained heuristic: charset entropy from
//     the character classes present, with penalties for common passwords,
//     sequential digits, and repeated characters.
//
// The strategy is selected once when the Estimator is constructed: the
// advanced model is probed at that point and, if the probe fails, the basic
// strategy serves every call for the lifetime of the process. There is no
// per-call fallback — an advanced-strategy failure mid-run surfaces as
// ErrEstimation rather than silently switching models.
//
// Label thresholds are shared by both strategies, so a given score always
// maps to the same label no matter which model produced it.
//
//	est := strength.New()
//	verdict, err := est.Estimate("hunter2")
//	if err != nil {
//	    // broken scoring engine, not bad input
//	}
//	fmt.Println(verdict.Score, verdict.Label, verdict.Hints)
package strength
