// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package config defines the format-agnostic model of a plan, along with the
// Loader and Parser interfaces that concrete file formats implement.
//
// The config.Plan is the single input of the plan package. It keeps every
// definition in the order it was read, because that order is what makes the
// rendered graph reproducible. Concrete implementations of the interfaces,
// such as for HCL, are provided in separate packages.
package config
