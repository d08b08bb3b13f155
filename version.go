package deputados

var Version = "v0.1.0"
