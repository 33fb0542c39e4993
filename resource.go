// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package texlayout

import "github.com/gogpu/texlayout/pixfmt"

// Target is the shape kind of a resource.
type Target uint8

const (
	TargetBuffer Target = iota
	Target1D
	Target2D
	Target3D
	TargetCube
	TargetRect
	Target1DArray
	Target2DArray
	TargetCubeArray

	targetCount
)

var targetNames = [targetCount]string{
	TargetBuffer:    "buf",
	Target1D:        "tex-1d",
	Target2D:        "tex-2d",
	Target3D:        "tex-3d",
	TargetCube:      "tex-cube",
	TargetRect:      "tex-rect",
	Target1DArray:   "tex-1d-array",
	Target2DArray:   "tex-2d-array",
	TargetCubeArray: "tex-cube-array",
}

// String returns a short classification name for the target.
func (t Target) String() string {
	if t >= targetCount {
		return "unknown"
	}
	return targetNames[t]
}

// BindFlags is a bitmask of binding purposes a resource may serve.
type BindFlags uint16

const (
	// BindRenderTarget marks a color render target.
	BindRenderTarget BindFlags = 1 << iota

	// BindDepthStencil marks a depth and/or stencil buffer.
	BindDepthStencil

	// BindSampler marks a sampling-engine source.
	BindSampler

	// BindScanout marks a display scanout surface.
	BindScanout

	// BindCursor marks a hardware cursor surface.
	BindCursor

	// BindLinear forces linear storage.
	BindLinear

	// BindStreamOutput marks a stream-output buffer.
	BindStreamOutput

	// BindAux marks an auxiliary multisample-control surface.
	BindAux
)

// Usage hints at the access pattern of a resource.
type Usage uint8

const (
	// UsageDefault is GPU-resident working storage.
	UsageDefault Usage = iota

	// UsageStaging is transfer storage for readback or upload.
	UsageStaging
)

// ResourceDesc describes a resource whose layout is to be computed. It
// is immutable for the duration of a computation. All fields are plain
// values, so two descriptions can be compared with == and the struct
// can key a map.
//
// Width, Height, Depth are the base (level 0) extent in texels.
// LastLevel is the index of the smallest mip level; 0 means a single
// level. ArraySize and Depth default to 1 when left zero, Samples to 1.
type ResourceDesc struct {
	Target    Target
	Format    pixfmt.Format
	Width     int
	Height    int
	Depth     int
	LastLevel int
	ArraySize int
	Samples   int
	Bind      BindFlags
	Usage     Usage

	// PersistentMap requests that the backing buffer stay mapped
	// host-visible for the lifetime of the resource. Layouts whose
	// storage cannot be accessed directly by the host are rejected.
	PersistentMap bool
}

// arraySize returns ArraySize with the zero default applied.
func (r *ResourceDesc) arraySize() int {
	if r.ArraySize < 1 {
		return 1
	}
	return r.ArraySize
}

// depth returns Depth with the zero default applied.
func (r *ResourceDesc) depth() int {
	if r.Depth < 1 {
		return 1
	}
	return r.Depth
}

// samples returns Samples with the zero default applied.
func (r *ResourceDesc) samples() int {
	if r.Samples < 1 {
		return 1
	}
	return r.Samples
}

// DebugName returns a short classification string for logs and tools.
// Buffers are refined by their binding.
func (r *ResourceDesc) DebugName() string {
	name := r.Target.String()
	if r.Target == TargetBuffer && r.Bind&BindStreamOutput != 0 {
		name = "buf-so"
	}
	return name
}
