// SPDX-License-Identifier: MIT
// Package costs declares the TransportCost and ActivityCost oracle
// interfaces (component C) and a SimpleActivityCost default, grounded on
// lvlath/tsp's cost.go: pure, allocation-conscious functions with no
// knowledge of the caller's tour or problem beyond what is passed in.
package costs
