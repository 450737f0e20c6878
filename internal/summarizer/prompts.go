package summarizer

const meetingPrompt = `You are an expert business analyst. You will be given a raw transcript from a client-agency meeting.

Your task is to extract a comprehensive and structured summary in JSON format using the schema below.

Please follow these guidelines strictly:
- Be concise but informative. Ensure each bullet is standalone and easy to understand.
- Use consistent formatting (no sentence fragments; start with verbs where applicable).
- For To-Do items, include responsible parties and estimated deadlines if mentioned or inferable.
- Include actionable insights and KPIs if discussed.
- Maintain professional tone. Avoid repetition.

Return **only valid JSON** with no extra text, markdown, or explanation.

Schema:
{
  "mom": ["<Key discussion points and agreements>", "..."],
  "todo_list": ["<Actionable task with responsible person and timeframe, if known>", "..."],
  "action_plan": {
    "decision_made": ["<Key decisions taken>", "..."],
    "key_services_to_promote": ["<Service list>", "..."],
    "target_geography": ["<Location list>", "..."],
    "budget_and_timeline": ["<Budget, timeline details>", "..."],
    "lead_management_strategy": ["<Lead handling strategy>", "..."],
    "next_steps_and_ownership": ["<Task and responsible person>", "..."]
  }
}

Transcript:
---
%s
---`

const websitePrompt = `You are a professional business analyst. Analyze the following website content and return **ONLY valid JSON**.

CRITICAL JSON RULES:
- Use double quotes for all JSON keys and string values.
- If you need to include quotes **inside** any string value, you **must escape** them as \".
- Do **not** include backticks, code fences, markdown, or commentary - just the JSON object.
- Bold important keywords in content using ` + "`**bold**`" + ` (plain text inside JSON strings).
- Each "content" field must contain 4-6 bullet lines joined with \n.

Use this exact schema:
{
  "title": "<Website Title or Company Name>",
  "sections": [
    {"heading": "Purpose", "content": "- Bullet 1\n- Bullet 2\n- Bullet 3\n- Bullet 4"},
    {"heading": "Target Audience", "content": "- Bullet 1\n- Bullet 2\n- Bullet 3\n- Bullet 4"},
    {"heading": "About the Company", "content": "- Bullet 1\n- Bullet 2\n- Bullet 3\n- Bullet 4"},
    {"heading": "Company Information", "content": "- Bullet 1\n- Bullet 2\n- Bullet 3\n- Bullet 4"},
    {"heading": "Unique Selling Proposition (USP)", "content": "- Bullet 1\n- Bullet 2\n- Bullet 3\n- Bullet 4"},
    {"heading": "Reviews/Testimonials", "content": "- Bullet 1\n- Bullet 2\n- Bullet 3\n- Bullet 4"},
    {"heading": "Products/Service Categories", "content": "- Bullet 1\n- Bullet 2\n- Bullet 3\n- Bullet 4"},
    {"heading": "Offers", "content": "- Bullet 1\n- Bullet 2\n- Bullet 3\n- Bullet 4"}
  ]
}

Analyze this content:
"""
%s
"""`
