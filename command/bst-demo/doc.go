// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// bst-demo - populate a binary search tree with random values, print
// it, rebuild it if the root is unbalanced and list its traversals
//
// Usage: bst-demo [--help] [--verbose] [--version] [--config-file=FILE]
//                 [--count=N] [--seed=N]
//
// the optional configuration file is Lua and must return a table:
//
//   return {
//       data_directory = ".",
//       count = 10,
//       maximum = 100,
//       seed = 0,
//       rebalance = true,
//       logging = {
//           directory = "log",
//           file = "bst-demo.log",
//           size = 1048576,
//           count = 10,
//           levels = { main = "info", DEFAULT = "critical" },
//       },
//   }
package main
