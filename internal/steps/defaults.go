// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package steps

import (
	"context"
	_ "embed"
)

//go:embed defaults.yaml
var defaultSteps []byte

// Default returns the embedded Magento steps.
func Default(ctx context.Context) ([]Definition, error) {
	return Load(ctx, defaultSteps)
}
