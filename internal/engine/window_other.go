//go:build !windows

package engine

import "github.com/go-gl/glfw/v3.3/glfw"

func SetDarkTitleBar(window *glfw.Window) {}

func SetWindowBorderColor(r, g, b float32) {}
