// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormap

// Qualitative palettes for categorical annotations, in preference
// order by size.

var default10 = []string{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
	"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
}

var default26 = []string{
	"#023fa5", "#7d87b9", "#bec1d4", "#d6bcc0", "#bb7784",
	"#8e063b", "#4a6fe3", "#8595e1", "#b5bbe3", "#e6afb9",
	"#e07b91", "#d33f6a", "#11c638", "#8dd593", "#c6dec7",
	"#ead3c6", "#f0b98d", "#ef9708", "#0fcfc0", "#9cded6",
	"#d5eae7", "#f3e1eb", "#f6c4e1", "#f79cd4", "#7f7f7f",
	"#c7c7c7",
}

var default64 = []string{
	"#7f0000", "#b22222", "#dc143c", "#ff0000", "#ff4500",
	"#ff6347", "#ff7f50", "#ff8c00", "#ffa500", "#ffd700",
	"#ffff00", "#adff2f", "#7fff00", "#32cd32", "#00ff00",
	"#228b22", "#006400", "#2e8b57", "#00fa9a", "#00ff7f",
	"#66cdaa", "#20b2aa", "#008b8b", "#00ffff", "#00ced1",
	"#40e0d0", "#5f9ea0", "#4682b4", "#87ceeb", "#00bfff",
	"#1e90ff", "#0000ff", "#0000cd", "#00008b", "#000080",
	"#191970", "#483d8b", "#6a5acd", "#7b68ee", "#8a2be2",
	"#9400d3", "#9932cc", "#ba55d3", "#da70d6", "#ee82ee",
	"#ff00ff", "#c71585", "#db7093", "#ff1493", "#ff69b4",
	"#ffb6c1", "#cd853f", "#d2691e", "#8b4513", "#a0522d",
	"#bc8f8f", "#deb887", "#f4a460", "#daa520", "#b8860b",
	"#808000", "#6b8e23", "#556b2f", "#696969",
}
