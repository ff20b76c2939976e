package notion

// CodeLanguage is the syntax used to highlight a code block.
type CodeLanguage string

// Languages accepted by Notion code blocks.
const (
	CodeLanguageAbap         CodeLanguage = "abap"
	CodeLanguageArduino      CodeLanguage = "arduino"
	CodeLanguageBash         CodeLanguage = "bash"
	CodeLanguageBasic        CodeLanguage = "basic"
	CodeLanguageC            CodeLanguage = "c"
	CodeLanguageClojure      CodeLanguage = "clojure"
	CodeLanguageCoffeescript CodeLanguage = "coffeescript"
	CodeLanguageCPlusPlus    CodeLanguage = "c++"
	CodeLanguageCSharp       CodeLanguage = "c#"
	CodeLanguageCSS          CodeLanguage = "css"
	CodeLanguageDart         CodeLanguage = "dart"
	CodeLanguageDiff         CodeLanguage = "diff"
	CodeLanguageDocker       CodeLanguage = "docker"
	CodeLanguageElixir       CodeLanguage = "elixir"
	CodeLanguageElm          CodeLanguage = "elm"
	CodeLanguageErlang       CodeLanguage = "erlang"
	CodeLanguageFlow         CodeLanguage = "flow"
	CodeLanguageFortran      CodeLanguage = "fortran"
	CodeLanguageFSharp       CodeLanguage = "f#"
	CodeLanguageGherkin      CodeLanguage = "gherkin"
	CodeLanguageGLSL         CodeLanguage = "glsl"
	CodeLanguageGo           CodeLanguage = "go"
	CodeLanguageGraphQL      CodeLanguage = "graphql"
	CodeLanguageGroovy       CodeLanguage = "groovy"
	CodeLanguageHaskell      CodeLanguage = "haskell"
	CodeLanguageHTML         CodeLanguage = "html"
	CodeLanguageJava         CodeLanguage = "java"
	CodeLanguageJavaScript   CodeLanguage = "javascript"
	CodeLanguageJSON         CodeLanguage = "json"
	CodeLanguageJulia        CodeLanguage = "julia"
	CodeLanguageKotlin       CodeLanguage = "kotlin"
	CodeLanguageLatex        CodeLanguage = "latex"
	CodeLanguageLess         CodeLanguage = "less"
	CodeLanguageLisp         CodeLanguage = "lisp"
	CodeLanguageLiveScript   CodeLanguage = "livescript"
	CodeLanguageLua          CodeLanguage = "lua"
	CodeLanguageMakefile     CodeLanguage = "makefile"
	CodeLanguageMarkdown     CodeLanguage = "markdown"
	CodeLanguageMarkup       CodeLanguage = "markup"
	CodeLanguageMatlab       CodeLanguage = "matlab"
	CodeLanguageMermaid      CodeLanguage = "mermaid"
	CodeLanguageNix          CodeLanguage = "nix"
	CodeLanguageObjectiveC   CodeLanguage = "objective-c"
	CodeLanguageOCaml        CodeLanguage = "ocaml"
	CodeLanguagePascal       CodeLanguage = "pascal"
	CodeLanguagePerl         CodeLanguage = "perl"
	CodeLanguagePHP          CodeLanguage = "php"
	CodeLanguagePlainText    CodeLanguage = "plain text"
	CodeLanguagePowerShell   CodeLanguage = "powershell"
	CodeLanguageProlog       CodeLanguage = "prolog"
	CodeLanguageProtobuf     CodeLanguage = "protobuf"
	CodeLanguagePython       CodeLanguage = "python"
	CodeLanguageR            CodeLanguage = "r"
	CodeLanguageReason       CodeLanguage = "reason"
	CodeLanguageRuby         CodeLanguage = "ruby"
	CodeLanguageRust         CodeLanguage = "rust"
	CodeLanguageSass         CodeLanguage = "sass"
	CodeLanguageScala        CodeLanguage = "scala"
	CodeLanguageScheme       CodeLanguage = "scheme"
	CodeLanguageSCSS         CodeLanguage = "scss"
	CodeLanguageShell        CodeLanguage = "shell"
	CodeLanguageSQL          CodeLanguage = "sql"
	CodeLanguageSwift        CodeLanguage = "swift"
	CodeLanguageTypeScript   CodeLanguage = "typescript"
	CodeLanguageVBNet        CodeLanguage = "vb.net"
	CodeLanguageVerilog      CodeLanguage = "verilog"
	CodeLanguageVHDL         CodeLanguage = "vhdl"
	CodeLanguageVisualBasic  CodeLanguage = "visual basic"
	CodeLanguageWebAssembly  CodeLanguage = "webassembly"
	CodeLanguageXML          CodeLanguage = "xml"
	CodeLanguageYAML         CodeLanguage = "yaml"
	CodeLanguageJavaCFamily  CodeLanguage = "java/c/c++/c#"
)
