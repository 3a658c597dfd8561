// SPDX-License-Identifier: MIT

// Package fabric is an in-process implementation of blacs.Transport: an R×C
// grid of endpoints, each driven by its own goroutine, exchanging messages
// through bounded lock-free queues.
//
// What:
//
//   - New(rows, cols) builds the grid; Endpoint(row, col) returns the
//     transport + grid of one process; Run drives every process at once.
//   - One SPSC queue (code.hybscloud.com/lfq) per (source, destination,
//     scope). A send packs the region once, stamps it and enqueues it to
//     every other process of its scope; a receive takes from its named
//     source, or else the earliest-stamped broadcast of its scope. A
//     broadcast issued after another one was received is never taken first.
//   - Waiting is adaptive backoff on iox.ErrWouldBlock, optionally bounded
//     by WithReceiveTimeout.
//
// Faults (returned through blacs operations unchanged):
//
//   - ErrContext, ErrCode, ErrDescriptor, ErrBufferTooShort, ErrSource:
//     argument checks at the transport boundary.
//   - ErrProtocolMismatch: the received message came from a different
//     operation kind, element type, topology, shape, triangle or diagonal.
//   - ErrTimeout: no progress within the configured timeout.
//
// Concurrency:
//
//   - Each Endpoint must be used by one goroutine at a time (the queues are
//     single-producer single-consumer). Distinct endpoints run concurrently.
//   - Sends copy the region before returning, so the caller may reuse the
//     buffer immediately.
package fabric
