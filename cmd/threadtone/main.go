// Threadtone - embroidery thread colour quantization
//
// Threadtone converts images into reduced palettes of real embroidery
// thread colours drawn from manufacturer catalogs.
//
// Copyright (c) 2025 The Threadtone Authors
// Licensed under the MIT License
package main

import (
	"github.com/threadtone/threadtone/internal/cli"
)

func main() {
	cli.Execute()
}
