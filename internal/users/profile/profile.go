// Copyright (c) 2026 LearnHub. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package profile reads the platform-side profile attached to an external identity.

The identity itself (credentials, email) lives with the external identity
provider. This package only owns the role used for authorization decisions.

# Architecture

  - Storage: users.profile, keyed by the identity's external id.
  - Consumers: the authorization gate, through [Repository.FindRole].
*/
package profile

import (
	"context"

	"github.com/taibuivan/learnhub/internal/platform/sec"
)

// # Repository Contracts

// Repository defines the read contract for profiles.
type Repository interface {
	// FindRole returns only the role column of the profile.
	// A missing row yields dberr.ErrNotFound.
	FindRole(context context.Context, id string) (sec.UserRole, error)
}
