//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/cwbudde/algo-lut/field"
	"github.com/cwbudde/algo-lut/lut"
)

var (
	engine   *lut.Engine
	renderer *field.Renderer
	funcs    []js.Func
)

func main() {
	api := js.Global().Get("Object").New()

	api.Set("setup", export(func(args []js.Value) any {
		var opts []lut.Option
		if len(args) > 0 && args[0].Type() == js.TypeNumber {
			opts = append(opts, lut.WithTrigSize(args[0].Int()))
		}
		e, err := lut.New(opts...)
		if err != nil {
			return err.Error()
		}
		r, err := field.New(e)
		if err != nil {
			return err.Error()
		}
		engine, renderer = e, r
		return js.Null()
	}))

	api.Set("setMode", export(func(args []js.Value) any {
		if engine == nil || len(args) < 1 {
			return js.Null()
		}
		mode, err := field.ParseMode(args[0].String())
		if err != nil {
			return err.Error()
		}
		prims, err := field.NewPrimitives(mode, engine)
		if err != nil {
			return err.Error()
		}
		r, err := field.New(engine, field.WithConfig(renderer.Config()), field.WithPrimitives(prims))
		if err != nil {
			return err.Error()
		}
		renderer = r
		return js.Null()
	}))

	api.Set("luSin", export(unary(func(x float32) float32 { return engine.Sin(x) })))
	api.Set("luCos", export(unary(func(x float32) float32 { return engine.Cos(x) })))
	api.Set("luSqrt", export(unary(func(x float32) float32 { return engine.Sqrt(x) })))

	api.Set("hypotApprox", export(func(args []js.Value) any {
		if engine == nil || len(args) < 2 {
			return js.Null()
		}
		return engine.Hypot(float32(args[0].Float()), float32(args[1].Float()))
	}))

	api.Set("render", export(func(args []js.Value) any {
		if renderer == nil || len(args) < 1 {
			return js.Global().Get("Uint8Array").New(0)
		}
		if err := renderer.Render(args[0].Int()); err != nil {
			return err.Error()
		}
		return gridArray()
	}))

	api.Set("grid", export(func(args []js.Value) any {
		if engine == nil {
			return js.Global().Get("Uint8Array").New(0)
		}
		return gridArray()
	}))

	api.Set("readPixel", export(func(args []js.Value) any {
		if engine == nil || len(args) < 1 {
			return -1
		}
		v, err := engine.Region().ReadPixel(args[0].Int())
		if err != nil {
			return -1
		}
		return int(v)
	}))

	api.Set("writePixel", export(func(args []js.Value) any {
		if engine == nil || len(args) < 2 {
			return js.Null()
		}
		if err := engine.Region().WritePixel(args[0].Int(), uint8(args[1].Int())); err != nil {
			return err.Error()
		}
		return js.Null()
	}))

	api.Set("memory", export(func(args []js.Value) any {
		if engine == nil {
			return js.Global().Get("Uint8Array").New(0)
		}
		b := engine.Region().Bytes()
		arr := js.Global().Get("Uint8Array").New(len(b))
		js.CopyBytesToJS(arr, b)
		return arr
	}))

	api.Set("size", export(func(args []js.Value) any {
		if renderer == nil {
			return js.Null()
		}
		cols, rows := renderer.Size()
		obj := js.Global().Get("Object").New()
		obj.Set("cols", cols)
		obj.Set("rows", rows)
		return obj
	}))

	js.Global().Set("AlgoLUT", api)
	select {}
}

func unary(fn func(float32) float32) func([]js.Value) any {
	return func(args []js.Value) any {
		if engine == nil || len(args) < 1 {
			return js.Null()
		}
		return fn(float32(args[0].Float()))
	}
}

func gridArray() js.Value {
	cells := engine.Region().Grid()
	arr := js.Global().Get("Uint8Array").New(len(cells))
	js.CopyBytesToJS(arr, cells)
	return arr
}

func export(fn func([]js.Value) any) js.Func {
	f := js.FuncOf(func(_ js.Value, args []js.Value) any {
		return fn(args)
	})
	funcs = append(funcs, f)
	return f
}
