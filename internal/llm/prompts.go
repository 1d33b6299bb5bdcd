package llm

// ParseInstruction is the system prompt for the whole-resume LLM parse
// path. It asks for the same field set the heuristic pipeline produces.
const ParseInstruction = `Parse the resume and provide JSON output containing name, email, phone, summary, skills, experience and projects. Respond with the JSON object only.`

// DescriptionInstruction is the system prompt for job description
// generation.
const DescriptionInstruction = `You are an expert HR assistant helping employers write professional, detailed, and compelling job descriptions.
Generate a complete job description for the following role using the information provided to you. The description should include:
1. Job Title
2. Company Overview (optional if not provided)
3. Job Summary (2-4 sentences)
4. Key Responsibilities (bullet points, 5-10 max)
5. Required Qualifications (education, experience, certifications)
6. Preferred Qualifications (optional)
7. Skills (technical and soft)
8. Work Environment & Schedule (e.g., remote, hybrid, in-office, shift)
9. Compensation & Benefits (optional if not provided)
10. Equal Opportunity Statement (optional)`
