// embed.go - 资源嵌入声明
// 必须放在项目根目录（与 data/ 同级）
// 因为 //go:embed 指令只能嵌入当前包目录及其子目录的文件
//
// 美术与音频（assets/）不嵌入：运行时从工作目录读取，缺失时使用程序化绘制和静音。
package main

import "embed"

//go:embed data/*.yaml
var dataFS embed.FS
