//go:build !mobile

// stub.go - 桌面端构建时的占位文件
//
// 移动端入口（mobile.go、embed.go）依赖复制进本目录的 data/ 和 assets/，
// 只在 -tags mobile 时编译；普通的 go build ./... 只看到这个文件。
package mobile

// Dummy 是一个空导出函数，确保包在非移动端构建时也能被引用
func Dummy() {}
