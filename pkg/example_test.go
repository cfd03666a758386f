package cargov_test

import (
	"errors"
	"fmt"

	cargov "github.com/bcomnes/cargov/pkg"
)

func ExampleBumpByLabel() {
	doc := `[package]
name = "cargo-v"
version = "0.4.2"
edition = "2021"
`
	res, err := cargov.BumpByLabel(doc, cargov.LabelMinor)
	if err != nil {
		fmt.Println("bump failed:", err)
		return
	}
	fmt.Println(res.OldVersion, "->", res.NewVersion)
	fmt.Print(res.Document)
	// Output:
	// 0.4.2 -> 0.5.0
	// [package]
	// name = "cargo-v"
	// version = "0.5.0"
	// edition = "2021"
}

func ExampleBumpTo() {
	doc := "[package]\nversion = \"1.9.3\"\n"

	_, err := cargov.BumpTo(doc, "v2.1.0")
	fmt.Println(errors.Is(err, cargov.ErrVersionNotGreater))

	res, err := cargov.BumpTo(doc, "v2.0.0")
	if err != nil {
		fmt.Println("bump failed:", err)
		return
	}
	fmt.Println(res.NewVersion)
	// Output:
	// true
	// 2.0.0
}
