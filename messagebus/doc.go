// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package messagebus - fire-and-forget delivery of list change records
//
// One record is sent per successful mutation, after its transaction
// has committed.  A single dispatch routine drains the input queue so
// listeners observe records in commit order.  Delivery is best effort:
// a listener with a full channel misses the record and the mutation is
// unaffected.
package messagebus
