// Package workload holds sample divide-and-conquer workloads used to
// exercise a byol.Scheduler end-to-end: parallel summation (QuickSum) and
// parallel quicksort (QuickSort), the shape of workload BYOL exists to
// admit.
package workload
