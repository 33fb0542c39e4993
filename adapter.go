// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package texlayout

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/texlayout/pixfmt"
)

// ErrUnsupportedFormat is returned by FromGPUTypes for texture formats
// the layout engine has no storage rules for.
var ErrUnsupportedFormat = errors.New("texlayout: unsupported texture format")

// gpuFormatTable maps the WebGPU-style format vocabulary onto the
// engine's storage formats.
var gpuFormatTable = map[gputypes.TextureFormat]pixfmt.Format{
	gputypes.TextureFormatR8Unorm:             pixfmt.FormatR8Unorm,
	gputypes.TextureFormatRGBA8Unorm:          pixfmt.FormatRGBA8Unorm,
	gputypes.TextureFormatBGRA8Unorm:          pixfmt.FormatBGRA8Unorm,
	gputypes.TextureFormatDepth24PlusStencil8: pixfmt.FormatZ24UnormS8Uint,
}

// FromGPUTypes builds a ResourceDesc from gputypes texture-descriptor
// vocabulary, so callers working against a WebGPU-style device can
// feed their descriptors straight into the layout engine.
//
// mipLevels is the level count (not the last level index); sampleCount
// follows the descriptor convention where zero means one.
func FromGPUTypes(format gputypes.TextureFormat, dim gputypes.TextureDimension, size gputypes.Extent3D, mipLevels, sampleCount int, usage gputypes.TextureUsage) (*ResourceDesc, error) {
	pf, ok := gpuFormatTable[format]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, format)
	}

	res := &ResourceDesc{
		Format: pf,
		Width:  int(size.Width),
		Height: int(size.Height),
	}

	switch dim {
	case gputypes.TextureDimension1D:
		res.Target = Target1D
		if size.DepthOrArrayLayers > 1 {
			res.Target = Target1DArray
			res.ArraySize = int(size.DepthOrArrayLayers)
		}
	case gputypes.TextureDimension3D:
		res.Target = Target3D
		res.Depth = int(size.DepthOrArrayLayers)
	default:
		res.Target = Target2D
		if size.DepthOrArrayLayers > 1 {
			res.Target = Target2DArray
			res.ArraySize = int(size.DepthOrArrayLayers)
		}
	}

	if mipLevels > 1 {
		res.LastLevel = mipLevels - 1
	}
	if sampleCount > 1 {
		res.Samples = sampleCount
	}

	if usage&gputypes.TextureUsageTextureBinding != 0 {
		res.Bind |= BindSampler
	}
	if usage&gputypes.TextureUsageRenderAttachment != 0 {
		if pf.HasDepth() || pf.HasStencil() {
			res.Bind |= BindDepthStencil
		} else {
			res.Bind |= BindRenderTarget
		}
	}

	// Pure transfer resources are staging storage.
	if res.Bind == 0 &&
		usage&(gputypes.TextureUsageCopySrc|gputypes.TextureUsageCopyDst) != 0 {
		res.Usage = UsageStaging
	}

	return res, nil
}
