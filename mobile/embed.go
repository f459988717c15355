//go:build mobile

// embed.go - 移动端资源嵌入声明
//
// 此文件仅在使用 -tags mobile 构建时编译。
// 构建前需要把 data/ 复制到此目录；assets/ 可选，
// mobile/assets 里只有 .keep 时游戏使用程序化绘制并保持静音：
//
//	cp -r data mobile/
//	[ -d assets ] && cp -r assets mobile/
//	go build -tags mobile ./mobile
package mobile

import "embed"

//go:embed all:assets
var assetsFS embed.FS

//go:embed data/*.yaml
var dataFS embed.FS
