// Copyright (c) 2026 LearnHub. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package schema holds the table and column names of every relation the API
// reads or writes, so SQL strings and migrations agree on a single spelling.
package schema
