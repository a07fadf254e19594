// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package wrapper provides the magento:install command, which runs the other
// installer commands in a fixed order.
//
// Options given to magento:install are forwarded to each wrapped command that
// declares them. Values a wrapped command decides while running (for example
// answers to interactive questions) are forwarded to the commands after it
// and take precedence over the values given on the command line.
package wrapper
