package help

const ColdstartYAML = `# seo-copywriter Quick Start

outputs:
  keywords: "Up to 8 ranked keyword phrases (1-3 words), most important first"
  meta_description: "Search snippet, at most 160 characters, cut at a sentence or word"
  readability: "Flesch Reading Ease, 0-100, higher is easier"

input_sources:
  text: "--text \"...\" (inline)"
  file: "--file description.txt"
  stdin: "no input flag reads standard input"
  html: "--html page.html (main content extracted)"
  url: "--url https://shop.example.com/product (fetched, then extracted)"

output_formats:
  json: "Machine readable report (default)"
  yaml: "Same fields as json"
  text: "Human readable summary with colour on terminals"

commands:
  analyze_text: |
    seo-copywriter analyze --text "Wireless headphones with noise cancellation."

  analyze_file_yaml: |
    seo-copywriter analyze --file description.txt --format yaml

  analyze_page: |
    seo-copywriter analyze --url "https://shop.example.com/headphones" --save

  generate: |
    seo-copywriter generate --name "WH-1000XM5" --brand Sony --type headphones \
      --features "noise cancellation,30 hour battery,fast charging"

  batch: |
    seo-copywriter batch --from "descriptions/**/*.txt" --workers 8 --out results/summary.json

  watch: |
    seo-copywriter watch --file description.txt --format text

  history: |
    seo-copywriter history list --limit 10
    seo-copywriter history show 5 --format yaml
    seo-copywriter history delete 5

  schema: |
    seo-copywriter schema > report.schema.json

config_file:
  path: "config.yaml (--config); a missing file means defaults"
  example: |
    db_path: seo-copywriter.db
    log_level: info
    log_format: json
    workers: 4
    cache_ttl: 10m
    detect_language: true
    analysis:
      max_phrases: 8
      min_words: 1
      max_words: 3
      max_length: 160
      top_n: 5

invariants:
  - "Blank input: keywords = [\"No keywords found\"], readability = 85"
  - "Empty input: meta description is the default sentence"
  - "Meta descriptions never exceed max_length characters"
  - "Same text + same limits = same report (cached in-process)"

error_behavior:
  - "Analysis never fails on odd input; it falls back to defaults"
  - "Batch files that cannot be read are listed with status error"
  - "Exit codes: 0=success, 1=error"
`
